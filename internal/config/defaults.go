package config

const (
	defaultProjectsDir = "~/.local/share/rigforge/projects"
	defaultLogDir      = "~/.local/share/rigforge/logs"
	defaultRulesFile   = "~/.config/rigforge/mappings.txt"

	defaultFramerate    = 30
	defaultOutputFormat = ".seanim"

	defaultLeftStartBone   = "j_shoulder_le"
	defaultLeftMidBone     = "j_elbow_le"
	defaultLeftEndBone     = "j_wrist_le"
	defaultLeftTargetBone  = "tag_ik_loc_le"
	defaultRightStartBone  = "j_shoulder_ri"
	defaultRightMidBone    = "j_elbow_ri"
	defaultRightEndBone    = "j_wrist_ri"
	defaultRightTargetBone = "tag_ik_loc_ri"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectsDir: defaultProjectsDir,
			LogDir:      defaultLogDir,
			RulesFile:   defaultRulesFile,
		},
		Output: Output{
			Framerate:    defaultFramerate,
			Format:       defaultOutputFormat,
			Experimental: true,
		},
		IK: IK{
			EnableLeftHand:  true,
			EnableRightHand: true,
			LeftStartBone:   defaultLeftStartBone,
			LeftMidBone:     defaultLeftMidBone,
			LeftEndBone:     defaultLeftEndBone,
			LeftTargetBone:  defaultLeftTargetBone,
			RightStartBone:  defaultRightStartBone,
			RightMidBone:    defaultRightMidBone,
			RightEndBone:    defaultRightEndBone,
			RightTargetBone: defaultRightTargetBone,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
