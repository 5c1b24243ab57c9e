package world

import (
	"encoding/json"
	"fmt"
	"os"

	"handlab/internal/engine"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string         `json:"name"`
	Tags       []string       `json:"tags,omitempty"`
	Position   [3]float32     `json:"position"`
	Rotation   [3]float32     `json:"rotation,omitempty"`
	Scale      *[3]float32    `json:"scale,omitempty"`
	Components []ComponentDef `json:"components,omitempty"`
	Children   []ObjectDef    `json:"children,omitempty"`
}

type ComponentDef struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props,omitempty"`
}

// LoadScene reads a scene file and spawns its objects into the world.
// Component types resolve through the engine registry; unknown types are an
// error so a typo in a scene file fails loudly instead of silently dropping
// behavior.
func LoadScene(w *World, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene %s: %w", path, err)
	}

	var file SceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse scene %s: %w", path, err)
	}

	for _, def := range file.Objects {
		obj, err := buildObject(def)
		if err != nil {
			return fmt.Errorf("scene %s: %w", path, err)
		}
		spawnTree(w, obj)
	}
	return nil
}

// spawnTree registers an object and its children with the world. Children
// keep their parent transform but still tick and collide individually.
func spawnTree(w *World, obj *engine.GameObject) {
	w.SpawnObject(obj)
	for _, child := range obj.Children {
		spawnTree(w, child)
	}
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	obj := engine.NewGameObject(def.Name)
	obj.Tags = def.Tags
	obj.Transform.Position.X = def.Position[0]
	obj.Transform.Position.Y = def.Position[1]
	obj.Transform.Position.Z = def.Position[2]
	obj.Transform.Rotation.X = def.Rotation[0]
	obj.Transform.Rotation.Y = def.Rotation[1]
	obj.Transform.Rotation.Z = def.Rotation[2]
	if def.Scale != nil {
		obj.Transform.Scale.X = def.Scale[0]
		obj.Transform.Scale.Y = def.Scale[1]
		obj.Transform.Scale.Z = def.Scale[2]
	}

	for _, compDef := range def.Components {
		comp := engine.CreateComponent(compDef.Type, compDef.Props)
		if comp == nil {
			return nil, fmt.Errorf("object %q: unknown component type %q", def.Name, compDef.Type)
		}
		obj.AddComponent(comp)
	}

	for _, childDef := range def.Children {
		child, err := buildObject(childDef)
		if err != nil {
			return nil, err
		}
		obj.AddChild(child)
	}

	return obj, nil
}

// SaveScene writes the scene's objects back to a scene file. Components
// without a registered serializer are skipped.
func SaveScene(w *World, path string) error {
	var file SceneFile
	for _, obj := range w.Scene.GameObjects {
		if obj.Parent != nil || !obj.Alive() {
			continue
		}
		file.Objects = append(file.Objects, describeObject(obj))
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	return nil
}

func describeObject(obj *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name: obj.Name,
		Tags: obj.Tags,
		Position: [3]float32{
			obj.Transform.Position.X, obj.Transform.Position.Y, obj.Transform.Position.Z,
		},
		Rotation: [3]float32{
			obj.Transform.Rotation.X, obj.Transform.Rotation.Y, obj.Transform.Rotation.Z,
		},
	}
	if obj.Transform.Scale.X != 1 || obj.Transform.Scale.Y != 1 || obj.Transform.Scale.Z != 1 {
		scale := [3]float32{
			obj.Transform.Scale.X, obj.Transform.Scale.Y, obj.Transform.Scale.Z,
		}
		def.Scale = &scale
	}

	for _, comp := range obj.Components() {
		if name, props, ok := engine.SerializeComponent(comp); ok {
			def.Components = append(def.Components, ComponentDef{Type: name, Props: props})
		}
	}
	for _, child := range obj.Children {
		if child.Alive() {
			def.Children = append(def.Children, describeObject(child))
		}
	}
	return def
}
