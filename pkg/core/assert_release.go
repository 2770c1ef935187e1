//go:build !raydebug

package core

const debugAssertions = false
