package project_test

import (
	"testing"

	"rigforge/internal/assets"
	"rigforge/internal/mapping"
	"rigforge/internal/project"
)

func fixedColor() project.ColorFunc {
	return func() int { return 12345678 }
}

func testConfig() project.Config {
	return project.Config{
		Assets: assets.Collection{
			Idle:      "/anims/vm_p08_sn_ultiger_idle.seanim",
			LeftPose:  "/anims/vm_p08_sn_ultiger_pose_l.seanim",
			RightPose: "/anims/vm_p08_sn_ultiger_pose_r.seanim",
			Skeleton:  "/anims/vm_p08_sn_ultiger.semodel",
			Additive: []string{
				"/anims/vm_p08_sn_ultiger_walk_offset_additive.seanim",
				"/anims/vm_p08_sn_ultiger_walk_to_sprint.seanim",
				"/anims/vm_p08_sn_ultiger_crawl_f.seanim",
			},
		},
		Prefix:    "vm_p08_sn_ultiger",
		OutputDir: "/out",
		Defaults: project.Defaults{
			OutputFramerate:         30,
			EnableLeftHandIK:        true,
			EnableRightHandIK:       true,
			UseExperimentalFeatures: true,
			LeftIKTargetBone:        "tag_ik_loc_le",
			RightIKTargetBone:       "tag_ik_loc_ri",
		},
		Bones: project.Bones{
			LeftStart: "j_shoulder_le", LeftMid: "j_elbow_le", LeftEnd: "j_wrist_le", LeftTarget: "tag_ik_loc_le",
			RightStart: "j_shoulder_ri", RightMid: "j_elbow_ri", RightEnd: "j_wrist_ri", RightTarget: "tag_ik_loc_ri",
		},
		OutputFormat: ".seanim",
	}
}

func expand(t *testing.T, line, prefix string) mapping.Binding {
	t.Helper()
	rule, err := mapping.ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine(%q): %v", line, err)
	}
	return mapping.Expand(rule, prefix)
}

func TestBuildAllocatesIDsInEmissionOrder(t *testing.T) {
	cfg := testConfig()
	bindings := []mapping.Binding{
		expand(t, "walk_offset_additive,walk_to_sprint sprint_in,1,1", cfg.Prefix),
		expand(t, "crawl_f crawl_f,1", cfg.Prefix),
	}

	doc, warnings := project.Build(cfg, bindings, fixedColor())
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if doc.ID != "1" || doc.Animations.ID != "2" {
		t.Fatalf("header ids wrong: %s/%s", doc.ID, doc.Animations.ID)
	}
	if len(doc.Animations.Values) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(doc.Animations.Values))
	}

	first := doc.Animations.Values[0]
	if first.ID != "3" || first.Layers.ID != "4" {
		t.Fatalf("first entry ids wrong: %s/%s", first.ID, first.Layers.ID)
	}
	if len(first.Layers.Values) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(first.Layers.Values))
	}
	if first.Layers.Values[0].ID != "5" || first.Layers.Values[1].ID != "6" {
		t.Fatalf("layer ids wrong: %s/%s", first.Layers.Values[0].ID, first.Layers.Values[1].ID)
	}
	for _, layer := range first.Layers.Values {
		if layer.Owner.ID != first.ID {
			t.Fatalf("layer owner ref %q should point at entry %q", layer.Owner.ID, first.ID)
		}
		if layer.Type != int(mapping.TypeAdditive) {
			t.Fatalf("unexpected layer type: %d", layer.Type)
		}
		if layer.Offset != nil {
			t.Fatal("offset must serialize as null")
		}
		if layer.Color != 12345678 {
			t.Fatalf("unexpected color: %d", layer.Color)
		}
	}
	if first.OutputName != "vm_p08_sn_ultiger_sprint_in" {
		t.Fatalf("unexpected output name: %q", first.OutputName)
	}

	second := doc.Animations.Values[1]
	if second.ID != "7" || second.Layers.ID != "8" || second.Layers.Values[0].ID != "9" {
		t.Fatalf("second entry ids wrong: %s/%s/%s", second.ID, second.Layers.ID, second.Layers.Values[0].ID)
	}
}

func TestBuildEntryCarriesDefaultsAndPoses(t *testing.T) {
	cfg := testConfig()
	bindings := []mapping.Binding{expand(t, "crawl_f crawl_f,1", cfg.Prefix)}

	doc, _ := project.Build(cfg, bindings, fixedColor())
	entry := doc.Animations.Values[0]
	if entry.Name != cfg.Assets.Idle {
		t.Fatalf("entry name should be the idle path, got %q", entry.Name)
	}
	if entry.SkeletonPath != cfg.Assets.Skeleton {
		t.Fatalf("unexpected skeleton path: %q", entry.SkeletonPath)
	}
	if entry.LeftHandPoseFile != cfg.Assets.LeftPose || entry.RightHandPoseFile != cfg.Assets.RightPose {
		t.Fatal("pose files not carried into entry")
	}
	if entry.OutputFramerate != 30 || !entry.UseExperimentalFeatures {
		t.Fatal("entry defaults not applied")
	}
	if entry.OutputFolder != "/out" {
		t.Fatalf("unexpected output folder: %q", entry.OutputFolder)
	}
	if entry.LeftIKTargetBoneName != "tag_ik_loc_le" {
		t.Fatalf("unexpected left target: %q", entry.LeftIKTargetBoneName)
	}
}

func TestBuildGlobalOverridesBeatDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.LeftTargetOverride = "tag_custom_le"
	bindings := []mapping.Binding{expand(t, "crawl_f crawl_f,1", cfg.Prefix)}

	doc, _ := project.Build(cfg, bindings, fixedColor())
	entry := doc.Animations.Values[0]
	if entry.LeftIKTargetBoneName != "tag_custom_le" {
		t.Fatalf("override not applied: %q", entry.LeftIKTargetBoneName)
	}
	if entry.RightIKTargetBoneName != "tag_ik_loc_ri" {
		t.Fatalf("right target should keep default: %q", entry.RightIKTargetBoneName)
	}
	// The project header keeps the configured chain targets.
	if doc.LeftIKTargetBoneName != "tag_ik_loc_le" {
		t.Fatalf("header target should not take the override: %q", doc.LeftIKTargetBoneName)
	}
}

func TestBuildNormalClips(t *testing.T) {
	cfg := testConfig()
	cfg.Assets.Normal = []string{"/anims/vm_p08_sn_ultiger_reload_fast.seanim"}

	doc, _ := project.Build(cfg, nil, fixedColor())
	if len(doc.Animations.Values) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(doc.Animations.Values))
	}
	entry := doc.Animations.Values[0]
	if entry.OutputName != "vm_p08_sn_ultiger_reload_fast" {
		t.Fatalf("normal output name should be the clip stem, got %q", entry.OutputName)
	}
	if len(entry.Layers.Values) != 1 {
		t.Fatalf("expected single layer, got %d", len(entry.Layers.Values))
	}
	layer := entry.Layers.Values[0]
	if layer.Type != int(mapping.TypeNormal) {
		t.Fatalf("normal clips must use type 0, got %d", layer.Type)
	}
	if layer.Name != cfg.Assets.Normal[0] {
		t.Fatalf("layer should name the clip, got %q", layer.Name)
	}
}

func TestBuildUnmatchedRuleBecomesWarning(t *testing.T) {
	cfg := testConfig()
	bindings := []mapping.Binding{
		expand(t, "walk_offset_additive,missing_clip sprint_in,1,1", cfg.Prefix),
		expand(t, "crawl_f crawl_f,1", cfg.Prefix),
	}

	doc, warnings := project.Build(cfg, bindings, fixedColor())
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].MissingSource != "vm_p08_sn_ultiger_missing_clip" {
		t.Fatalf("unexpected missing source: %q", warnings[0].MissingSource)
	}
	if len(doc.Animations.Values) != 1 {
		t.Fatalf("unmatched rule should be skipped, got %d entries", len(doc.Animations.Values))
	}
	// Skipped rules must not consume ids.
	if doc.Animations.Values[0].ID != "3" {
		t.Fatalf("unexpected first entry id: %s", doc.Animations.Values[0].ID)
	}
}

func TestBuildFallsBackToIdleOnly(t *testing.T) {
	cfg := testConfig()
	doc, warnings := project.Build(cfg, nil, fixedColor())
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(doc.Animations.Values) != 1 {
		t.Fatalf("expected idle fallback entry, got %d", len(doc.Animations.Values))
	}
	entry := doc.Animations.Values[0]
	if entry.OutputName != "vm_p08_sn_ultiger_idle" {
		t.Fatalf("fallback output name should be the idle stem, got %q", entry.OutputName)
	}
	if len(entry.Layers.Values) != 0 {
		t.Fatalf("fallback entry must have no layers, got %d", len(entry.Layers.Values))
	}
}

func TestBuildDeterministicForFixedColors(t *testing.T) {
	cfg := testConfig()
	bindings := []mapping.Binding{expand(t, "crawl_f crawl_f,1", cfg.Prefix)}
	first, _ := project.Build(cfg, bindings, fixedColor())
	second, _ := project.Build(cfg, bindings, fixedColor())
	if first.Animations.Values[0].ID != second.Animations.Values[0].ID {
		t.Fatal("builds with identical input must allocate identical ids")
	}
	if first.Animations.Values[0].Layers.Values[0].Color != second.Animations.Values[0].Layers.Values[0].Color {
		t.Fatal("fixed color source must yield identical colors")
	}
}
