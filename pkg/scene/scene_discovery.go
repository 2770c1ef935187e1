package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "yaml"
	FilePath    string `json:"filePath"`    // Path to YAML file (yaml type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const (
	builtinGroup     = "Built-in Scenes"
	defaultFileGroup = "Scene Files"
	yamlPrefix       = "yaml:"
)

type builtin struct {
	info  SceneInfo
	build func() *Scene
}

var builtins = []builtin{
	{SceneInfo{ID: "default", Name: "Default Scene", Description: "Spheres, a triangle and a box floor under two point lights"}, NewDefaultScene},
	{SceneInfo{ID: "room", Name: "Room", Description: "Open box room built from triangles"}, NewRoomScene},
	{SceneInfo{ID: "sphere-grid", Name: "Sphere Grid", Description: "Grid of colored spheres under an orthographic camera"}, NewSphereGridScene},
	{SceneInfo{ID: "empty", Name: "Empty Scene", Description: "No geometry; renders black"}, NewEmptyScene},
}

// BuiltinScenes returns the metadata of the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtinGroup
		info.Type = "builtin"
		scenes = append(scenes, info)
	}
	return scenes
}

// ListFileScenes scans dir for *.yaml and *.yml scene files. A missing
// directory yields an empty list.
func ListFileScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan scenes directory")
		}
		files = append(files, matches...)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseFileMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			klog.InfoS("Skipping unreadable scene file", "path", filePath, "err", err)
			continue
		}
		scenes = append(scenes, info)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseFileMetadata reads the name, description and group of a scene file
// without building it
func ParseFileMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          yamlPrefix + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       defaultFileGroup,
		Type:        "yaml",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, errors.Wrapf(err, "reading %s", filePath)
	}
	file, err := ParseFile(data)
	if err != nil {
		return info, err
	}

	if file.Name != "" {
		info.Name = file.Name
		info.DisplayName = file.Name
	}
	if file.Group != "" {
		info.Group = file.Group
	}
	info.Description = file.Description
	return info, nil
}

// Discover returns both built-in and file scenes, grouped by category
func Discover(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListFileScenes(dir)
	if err != nil {
		return response, errors.Wrap(err, "failed to list scene files")
	}

	allScenes := append(BuiltinScenes(), fileScenes...)

	// Group scenes by their Group field
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Create ordered groups (Built-in first, then alphabetical)
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtinGroup,
		Scenes: groupMap[builtinGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// Create builds the scene with the given id. Builtin scenes are addressed by
// name, scene files as "yaml:<file name without extension>" inside dir.
func Create(id, dir string) (*Scene, error) {
	if name, ok := strings.CutPrefix(id, yamlPrefix); ok {
		if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return nil, errors.Errorf("invalid scene file name %q", name)
		}
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return LoadFile(path)
			}
		}
		return nil, errors.Errorf("scene file %q not found in %s", name, dir)
	}

	for _, b := range builtins {
		if b.info.ID == id {
			return b.build(), nil
		}
	}
	return nil, errors.Errorf("unknown scene %q", id)
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
