package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by ByName for names with no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by ByName
	Description string
	build       func() *Scene
}

var builtinScenes = []SceneInfo{
	{ID: "default", Description: "Red, green and blue spheres on a yellow ground", build: NewDefaultScene},
	{ID: "trio", Description: "Alternate three-sphere layout below the horizon", build: NewTrioScene},
	{ID: "empty", Description: "Lights only; renders the background", build: NewEmptyScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// ByName builds a fresh copy of the named built-in scene
func ByName(name string) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.ID == name {
			return info.build(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
