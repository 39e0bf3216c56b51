package assets_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"rigforge/internal/assets"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("touch %s: %v", name, err)
	}
	return path
}

func TestCollectFromScanDir(t *testing.T) {
	dir := t.TempDir()
	idle := touch(t, dir, "vm_p08_sn_ultiger_idle.seanim")
	left := touch(t, dir, "vm_p08_sn_ultiger_pose_l.seanim")
	right := touch(t, dir, "vm_p08_sn_ultiger_pose_r.seanim")
	skel := touch(t, dir, "vm_p08_sn_ultiger.semodel")
	clip10 := touch(t, dir, "vm_p08_sn_ultiger_clip_10.seanim")
	clip2 := touch(t, dir, "vm_p08_sn_ultiger_clip_2.seanim")
	touch(t, dir, "notes.txt")

	col, err := assets.Collect(assets.Options{ScanDir: dir})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if col.Idle != idle || col.LeftPose != left || col.RightPose != right || col.Skeleton != skel {
		t.Fatalf("base assets misclassified: %+v", col)
	}
	// Numeric-aware ordering: clip_2 before clip_10.
	if want := []string{clip2, clip10}; !reflect.DeepEqual(col.Additive, want) {
		t.Fatalf("unexpected additive clips: got %v want %v", col.Additive, want)
	}
	if len(col.Normal) != 0 {
		t.Fatalf("expected no normal clips, got %v", col.Normal)
	}
}

func TestCollectExplicitPathsWin(t *testing.T) {
	dir := t.TempDir()
	scanIdle := touch(t, dir, "scan_idle.seanim")
	explicitIdle := touch(t, dir, "chosen_one_idle.seanim")
	touch(t, dir, "a_pose_l.seanim")
	touch(t, dir, "a_pose_r.seanim")
	touch(t, dir, "a.semodel")

	col, err := assets.Collect(assets.Options{Idle: explicitIdle, ScanDir: dir})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if col.Idle != explicitIdle {
		t.Fatalf("explicit idle should win, got %q", col.Idle)
	}
	// The scanned idle keeps its role-suffix, so it must not leak into clips.
	for _, clip := range col.Additive {
		if clip == scanIdle {
			t.Fatalf("scanned idle leaked into additive clips: %v", col.Additive)
		}
	}
}

func TestCollectMissingBaseAsset(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a_idle.seanim")
	touch(t, dir, "a_pose_l.seanim")
	touch(t, dir, "a_pose_r.seanim")
	// no skeleton

	if _, err := assets.Collect(assets.Options{ScanDir: dir}); err == nil {
		t.Fatal("expected error for missing skeleton")
	}
}

func TestCollectRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	idle := touch(t, dir, "a_idle.fbx")
	left := touch(t, dir, "a_pose_l.seanim")
	right := touch(t, dir, "a_pose_r.seanim")
	skel := touch(t, dir, "a.semodel")

	_, err := assets.Collect(assets.Options{Idle: idle, LeftPose: left, RightPose: right, Skeleton: skel})
	if err == nil {
		t.Fatal("expected error for non-seanim idle")
	}
}

func TestPrefixDerivation(t *testing.T) {
	cases := []struct {
		idle string
		want string
	}{
		{"/anims/vm_p08_sn_ultiger_idle.seanim", "vm_p08_sn_ultiger"},
		{"/anims/walk_idle.seanim", "walk"},
		{"/anims/single.seanim", "single"},
	}
	for _, tc := range cases {
		col := assets.Collection{Idle: tc.idle}
		got, err := col.Prefix()
		if err != nil {
			t.Fatalf("Prefix(%q) returned error: %v", tc.idle, err)
		}
		if got != tc.want {
			t.Fatalf("Prefix(%q) = %q, want %q", tc.idle, got, tc.want)
		}
	}
}

func TestSortClipsNumericAware(t *testing.T) {
	clips := []string{"/a/clip_10.seanim", "/a/clip_2.seanim", "/a/Clip_1.seanim"}
	assets.SortClips(clips)
	want := []string{"/a/Clip_1.seanim", "/a/clip_2.seanim", "/a/clip_10.seanim"}
	if !reflect.DeepEqual(clips, want) {
		t.Fatalf("unexpected order: %v", clips)
	}
}
