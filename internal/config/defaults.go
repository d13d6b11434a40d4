package config

const (
	defaultStateDir      = "~/.local/share/inkwell"
	defaultBackupsDir    = "~/.local/share/inkwell/backups"
	defaultWorkspacesDir = "~/.local/share/inkwell/workspaces"
	defaultLogDir        = "~/.local/share/inkwell/logs"
	defaultWorkspaceExt  = ".inkspace"
	defaultRecentsMax    = 200
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir:      defaultStateDir,
			BackupsDir:    defaultBackupsDir,
			WorkspacesDir: defaultWorkspacesDir,
			LogDir:        defaultLogDir,
		},
		Drops: Drops{
			WorkspaceExt: defaultWorkspaceExt,
		},
		Recents: Recents{
			MaxEntries: defaultRecentsMax,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
