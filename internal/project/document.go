package project

import (
	"path/filepath"
	"strconv"
	"strings"

	"rigforge/internal/mapping"
)

// Ref is a JSON pointer to a previously emitted $id.
type Ref struct {
	ID string `json:"$ref"`
}

// Layer is one animation layer inside an entry.
type Layer struct {
	ID     string  `json:"$id"`
	Owner  Ref     `json:"Owner"`
	Name   string  `json:"Name"`
	Offset *string `json:"Offset"`
	Color  int     `json:"Color"`
	Type   int     `json:"Type"`
}

// LayerList wraps an entry's layers with their own $id.
type LayerList struct {
	ID     string  `json:"$id"`
	Values []Layer `json:"$values"`
}

// Entry is one animation conversion job in the project.
type Entry struct {
	ID                      string    `json:"$id"`
	OutputFramerate         int       `json:"OutputFramerate"`
	Name                    string    `json:"Name"`
	OutputName              string    `json:"OutputName"`
	OutputFolder            string    `json:"OutputFolder"`
	SkeletonPath            string    `json:"SkeletonPath"`
	EnableLeftHandIK        bool      `json:"EnableLeftHandIK"`
	EnableRightHandIK       bool      `json:"EnableRightHandIK"`
	UseExperimentalFeatures bool      `json:"UseExperimentalFeatures"`
	LeftHandPoseFile        string    `json:"LeftHandPoseFile"`
	RightHandPoseFile       string    `json:"RightHandPoseFile"`
	LeftIKTargetBoneName    string    `json:"LeftIKTargetBoneName"`
	RightIKTargetBoneName   string    `json:"RightIKTargetBoneName"`
	Layers                  LayerList `json:"Layers"`
}

// EntryList wraps the project's entries with their own $id.
type EntryList struct {
	ID     string  `json:"$id"`
	Values []Entry `json:"$values"`
}

// Document is the full .aprj object graph.
type Document struct {
	ID                      string    `json:"$id"`
	EnableAnimationTrimming bool      `json:"EnableAnimationTrimming"`
	LeftIKStartBoneName     string    `json:"LeftIKStartBoneName"`
	LeftIKMidBoneName       string    `json:"LeftIKMidBoneName"`
	LeftIKEndBoneName       string    `json:"LeftIKEndBoneName"`
	LeftIKTargetBoneName    string    `json:"LeftIKTargetBoneName"`
	RightIKStartBoneName    string    `json:"RightIKStartBoneName"`
	RightIKMidBoneName      string    `json:"RightIKMidBoneName"`
	RightIKEndBoneName      string    `json:"RightIKEndBoneName"`
	RightIKTargetBoneName   string    `json:"RightIKTargetBoneName"`
	OutputPrefix            string    `json:"OutputPrefix"`
	OutputSuffix            string    `json:"OutputSuffix"`
	OutputFormat            string    `json:"OutputFormat"`
	Animations              EntryList `json:"Animations"`
}

// Warning records a binding that could not be resolved against the collected
// additive clips. Warnings never abort a build.
type Warning struct {
	OutputName    string
	MissingSource string
}

// ColorFunc supplies the layer color for each emitted layer. The rig tool
// expects an 8-digit integer.
type ColorFunc func() int

// Build resolves bindings against the additive clips and assembles the
// document. Ids 1 and 2 belong to the project and the entry list; entries
// allocate ids in emission order so output diffs stay stable.
func Build(cfg Config, bindings []mapping.Binding, color ColorFunc) (*Document, []Warning) {
	var warnings []Warning
	counter := 3

	var entries []Entry
	for _, binding := range bindings {
		clips, missing := resolveClips(binding, cfg.Assets.Additive)
		if missing != "" {
			warnings = append(warnings, Warning{OutputName: binding.OutputName, MissingSource: missing})
			continue
		}

		entryID := strconv.Itoa(counter)
		layerListID := strconv.Itoa(counter + 1)
		layers := make([]Layer, 0, len(clips))
		for i, clip := range clips {
			layers = append(layers, Layer{
				ID:    strconv.Itoa(counter + 2 + i),
				Owner: Ref{ID: entryID},
				Name:  clip,
				Color: color(),
				Type:  int(binding.Type),
			})
		}
		entries = append(entries, cfg.newEntry(entryID, binding.OutputName, LayerList{ID: layerListID, Values: layers}))
		counter += 2 + len(clips)
	}

	for _, clip := range cfg.Assets.Normal {
		entryID := strconv.Itoa(counter)
		layerListID := strconv.Itoa(counter + 1)
		layer := Layer{
			ID:    strconv.Itoa(counter + 2),
			Owner: Ref{ID: entryID},
			Name:  clip,
			Color: color(),
			Type:  int(mapping.TypeNormal),
		}
		outputName := strings.TrimSuffix(filepath.Base(clip), filepath.Ext(clip))
		entries = append(entries, cfg.newEntry(entryID, outputName, LayerList{ID: layerListID, Values: []Layer{layer}}))
		counter += 3
	}

	if len(entries) == 0 {
		// Nothing matched: convert the idle animation alone so the project
		// still opens in the rig tool.
		idleName := strings.TrimSuffix(filepath.Base(cfg.Assets.Idle), filepath.Ext(cfg.Assets.Idle))
		entries = append(entries, cfg.newEntry(
			strconv.Itoa(counter),
			idleName,
			LayerList{ID: strconv.Itoa(counter + 1), Values: []Layer{}},
		))
	}

	doc := &Document{
		ID:                      "1",
		EnableAnimationTrimming: cfg.EnableTrimming,
		LeftIKStartBoneName:     cfg.Bones.LeftStart,
		LeftIKMidBoneName:       cfg.Bones.LeftMid,
		LeftIKEndBoneName:       cfg.Bones.LeftEnd,
		LeftIKTargetBoneName:    cfg.Bones.LeftTarget,
		RightIKStartBoneName:    cfg.Bones.RightStart,
		RightIKMidBoneName:      cfg.Bones.RightMid,
		RightIKEndBoneName:      cfg.Bones.RightEnd,
		RightIKTargetBoneName:   cfg.Bones.RightTarget,
		OutputPrefix:            cfg.OutputPrefix,
		OutputSuffix:            cfg.OutputSuffix,
		OutputFormat:            cfg.OutputFormat,
		Animations:              EntryList{ID: "2", Values: entries},
	}
	return doc, warnings
}

func (c Config) newEntry(id, outputName string, layers LayerList) Entry {
	return Entry{
		ID:                      id,
		OutputFramerate:         c.Defaults.OutputFramerate,
		Name:                    c.Assets.Idle,
		OutputName:              outputName,
		OutputFolder:            c.OutputDir,
		SkeletonPath:            c.Assets.Skeleton,
		EnableLeftHandIK:        c.Defaults.EnableLeftHandIK,
		EnableRightHandIK:       c.Defaults.EnableRightHandIK,
		UseExperimentalFeatures: c.Defaults.UseExperimentalFeatures,
		LeftHandPoseFile:        c.Assets.LeftPose,
		RightHandPoseFile:       c.Assets.RightPose,
		LeftIKTargetBoneName:    c.leftTarget(),
		RightIKTargetBoneName:   c.rightTarget(),
		Layers:                  layers,
	}
}

// resolveClips matches each source name against the additive clip base
// names; the first clip containing the name wins. Returns the missing source
// name when any fragment has no match.
func resolveClips(binding mapping.Binding, clips []string) ([]string, string) {
	resolved := make([]string, 0, len(binding.SourceNames))
	for _, source := range binding.SourceNames {
		found := ""
		for _, clip := range clips {
			if strings.Contains(filepath.Base(clip), source) {
				found = clip
				break
			}
		}
		if found == "" {
			return nil, source
		}
		resolved = append(resolved, found)
	}
	return resolved, ""
}
