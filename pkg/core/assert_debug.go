//go:build raydebug

package core

const debugAssertions = true
