// Package completion tests shell completion installation with backup and idempotency.
// Related: internal/completion/install.go
// Tags: completion, install, backup, idempotency

package completion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateBackup(t *testing.T) {
	tests := map[string]struct {
		setup      func(t *testing.T) string
		wantErr    bool
		wantBackup bool
	}{
		"creates backup for existing file": {
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				filePath := filepath.Join(dir, ".bashrc")
				if err := os.WriteFile(filePath, []byte("original content"), 0644); err != nil {
					t.Fatal(err)
				}
				return filePath
			},
			wantBackup: true,
		},
		"no backup for non-existent file": {
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				return filepath.Join(dir, ".bashrc")
			},
			wantBackup: false,
		},
		"preserves original content": {
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				filePath := filepath.Join(dir, ".bashrc")
				content := "# My custom bashrc\nexport PATH=$HOME/bin:$PATH\n"
				if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
					t.Fatal(err)
				}
				return filePath
			},
			wantBackup: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			filePath := tc.setup(t)

			backupPath, err := CreateBackup(filePath)

			if (err != nil) != tc.wantErr {
				t.Errorf("CreateBackup() error = %v, wantErr %v", err, tc.wantErr)
				return
			}

			if tc.wantBackup {
				if backupPath == "" {
					t.Errorf("CreateBackup() returned empty backup path, expected backup")
					return
				}

				if _, err := os.Stat(backupPath); os.IsNotExist(err) {
					t.Errorf("Backup file does not exist at %s", backupPath)
					return
				}

				originalContent, _ := os.ReadFile(filePath)
				backupContent, _ := os.ReadFile(backupPath)
				if string(originalContent) != string(backupContent) {
					t.Errorf("Backup content = %q, want %q", string(backupContent), string(originalContent))
				}

				if !strings.Contains(backupPath, ".blogforge-backup-") {
					t.Errorf("Backup path %s doesn't contain expected suffix", backupPath)
				}
			} else {
				if backupPath != "" {
					t.Errorf("CreateBackup() = %s, want empty path", backupPath)
				}
			}
		})
	}
}

func TestCreateBackupTimestampFormat(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, ".bashrc")
	if err := os.WriteFile(filePath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	backupPath, err := CreateBackup(filePath)
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	// Format: .bashrc.blogforge-backup-YYYYMMDD-HHMMSS
	parts := strings.Split(filepath.Base(backupPath), ".blogforge-backup-")
	if len(parts) != 2 {
		t.Fatalf("Unexpected backup path format: %s", backupPath)
	}

	timestamp := parts[1]
	if _, err := time.Parse("20060102-150405", timestamp); err != nil {
		t.Fatalf("Failed to parse timestamp %s: %v", timestamp, err)
	}
}

func TestHasExistingInstallation(t *testing.T) {
	tests := map[string]struct {
		setup   func(t *testing.T) string
		want    bool
		wantErr bool
	}{
		"detects existing installation": {
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				filePath := filepath.Join(dir, ".bashrc")
				content := "# Some config\n" + StartMarker + "\nsource <(blogforge completion bash)\n" + EndMarker + "\n"
				if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
					t.Fatal(err)
				}
				return filePath
			},
			want: true,
		},
		"no installation found": {
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				filePath := filepath.Join(dir, ".bashrc")
				content := "# Some config\nexport PATH=$HOME/bin:$PATH\n"
				if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
					t.Fatal(err)
				}
				return filePath
			},
			want: false,
		},
		"file does not exist": {
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				return filepath.Join(dir, ".bashrc")
			},
			want: false,
		},
		"only start marker present": {
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				filePath := filepath.Join(dir, ".bashrc")
				content := "# Some config\n" + StartMarker + "\n"
				if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
					t.Fatal(err)
				}
				return filePath
			},
			// Detection is based on the start marker only.
			want: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			filePath := tc.setup(t)

			got, err := HasExistingInstallation(filePath)

			if (err != nil) != tc.wantErr {
				t.Errorf("HasExistingInstallation() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("HasExistingInstallation() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPermissionError(t *testing.T) {
	err := &PermissionError{
		Path:      "/etc/bashrc",
		Operation: "write",
		Err:       os.ErrPermission,
	}

	errMsg := err.Error()
	if !strings.Contains(errMsg, "permission denied") {
		t.Errorf("Error() = %q, want to contain 'permission denied'", errMsg)
	}
	if !strings.Contains(errMsg, "/etc/bashrc") {
		t.Errorf("Error() = %q, want to contain path", errMsg)
	}
	if !strings.Contains(errMsg, "write") {
		t.Errorf("Error() = %q, want to contain operation", errMsg)
	}

	if !IsPermissionError(err) {
		t.Error("IsPermissionError() = false, want true")
	}

	if IsPermissionError(os.ErrNotExist) {
		t.Error("IsPermissionError(os.ErrNotExist) = true, want false")
	}
}

func TestPermissionErrorUnwrap(t *testing.T) {
	t.Parallel()

	innerErr := os.ErrPermission
	err := &PermissionError{
		Path:      "/etc/bashrc",
		Operation: "write",
		Err:       innerErr,
	}

	if unwrapped := err.Unwrap(); unwrapped != innerErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, innerErr)
	}
}

func TestGetManualInstructions(t *testing.T) {
	tests := map[string]struct {
		shell        Shell
		wantContains []string
	}{
		"bash instructions": {
			shell: Bash,
			wantContains: []string{
				"bash",
				".bashrc",
				StartMarker,
				"source <(blogforge completion bash)",
			},
		},
		"zsh instructions": {
			shell: Zsh,
			wantContains: []string{
				"zsh",
				".zshrc",
				"compinit",
				StartMarker,
			},
		},
		"fish instructions": {
			shell: Fish,
			wantContains: []string{
				"fish",
				"completions/blogforge.fish",
			},
		},
		"powershell instructions": {
			shell: PowerShell,
			wantContains: []string{
				"powershell",
				"$PROFILE",
				"Out-String",
				"Invoke-Expression",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			instructions := GetManualInstructions(tc.shell)

			for _, substr := range tc.wantContains {
				if !strings.Contains(strings.ToLower(instructions), strings.ToLower(substr)) {
					t.Errorf("GetManualInstructions(%s) = %q, want to contain %q", tc.shell, instructions, substr)
				}
			}
		})
	}
}

func TestGetAllManualInstructions(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	GetAllManualInstructions(&buf)

	output := buf.String()

	for _, shell := range SupportedShells() {
		if !strings.Contains(strings.ToLower(output), strings.ToLower(string(shell))) {
			t.Errorf("GetAllManualInstructions() should contain %s instructions", shell)
		}
	}

	if !strings.Contains(output, "---") {
		t.Error("GetAllManualInstructions() should contain separators")
	}
}

func TestInstallRCFile(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		shell           Shell
		rcFileName      string
		existingContent string
		wantAction      InstallAction
		wantBackup      bool
	}{
		"bash new installation": {
			shell:           Bash,
			rcFileName:      ".bashrc",
			existingContent: "# My bashrc\nexport PATH=$HOME/bin:$PATH\n",
			wantAction:      ActionInstalled,
			wantBackup:      true,
		},
		"bash skip existing installation": {
			shell:           Bash,
			rcFileName:      ".bashrc",
			existingContent: "# My bashrc\n" + StartMarker + "\nsource <(blogforge completion bash)\n" + EndMarker + "\n",
			wantAction:      ActionSkipped,
			wantBackup:      false,
		},
		"zsh new installation": {
			shell:           Zsh,
			rcFileName:      ".zshrc",
			existingContent: "# My zshrc\n",
			wantAction:      ActionInstalled,
			wantBackup:      true,
		},
		"zsh skip existing installation": {
			shell:           Zsh,
			rcFileName:      ".zshrc",
			existingContent: "# My zshrc\n" + StartMarker + "\nsource <(blogforge completion zsh)\n" + EndMarker + "\n",
			wantAction:      ActionSkipped,
			wantBackup:      false,
		},
		"bash new rc file creation": {
			shell:           Bash,
			rcFileName:      ".bashrc",
			existingContent: "",
			wantAction:      ActionInstalled,
			wantBackup:      false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tempHome := t.TempDir()
			rcPath := filepath.Join(tempHome, tc.rcFileName)

			if tc.existingContent != "" {
				if err := os.WriteFile(rcPath, []byte(tc.existingContent), 0644); err != nil {
					t.Fatal(err)
				}
			}

			config := GetShellConfig(tc.shell, tempHome)

			result, err := installRCFile(tc.shell, config)
			if err != nil {
				t.Fatalf("installRCFile() error = %v", err)
			}
			if result == nil {
				t.Fatal("installRCFile() returned nil result")
			}

			if result.Action != tc.wantAction {
				t.Errorf("installRCFile() action = %v, want %v", result.Action, tc.wantAction)
			}

			if result.Shell != tc.shell {
				t.Errorf("installRCFile() shell = %v, want %v", result.Shell, tc.shell)
			}

			if tc.wantBackup && result.BackupPath == "" {
				t.Error("installRCFile() expected backup but got none")
			}

			if !tc.wantBackup && result.BackupPath != "" {
				t.Errorf("installRCFile() unexpected backup at %s", result.BackupPath)
			}

			if tc.wantAction == ActionInstalled {
				content, _ := os.ReadFile(rcPath)
				if !strings.Contains(string(content), StartMarker) {
					t.Error("installRCFile() did not add completion block")
				}
				if !strings.Contains(string(content), EndMarker) {
					t.Error("installRCFile() did not add end marker")
				}
			}
		})
	}
}

func TestInstallRCFileDirectoryCreation(t *testing.T) {
	t.Parallel()

	tempHome := t.TempDir()
	nestedDir := filepath.Join(tempHome, "Documents", "WindowsPowerShell")
	profilePath := filepath.Join(nestedDir, "Microsoft.PowerShell_profile.ps1")

	config := ShellConfig{
		Shell:                  PowerShell,
		RCPath:                 profilePath,
		RequiresRCModification: true,
	}

	result, err := installRCFile(PowerShell, config)
	if err != nil {
		t.Fatalf("installRCFile() error = %v", err)
	}

	if result.Action != ActionInstalled {
		t.Errorf("action = %v, want %v", result.Action, ActionInstalled)
	}

	if _, err := os.Stat(nestedDir); os.IsNotExist(err) {
		t.Error("installRCFile() did not create parent directory")
	}

	if _, err := os.Stat(profilePath); os.IsNotExist(err) {
		t.Error("installRCFile() did not create profile file")
	}
}

func TestInstallResultMessage(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		action       InstallAction
		existingFile bool
		wantContains []string
	}{
		"installed with backup": {
			action:       ActionInstalled,
			existingFile: true,
			wantContains: []string{"installed", "backup"},
		},
		"installed without backup": {
			action:       ActionInstalled,
			existingFile: false,
			wantContains: []string{"installed"},
		},
		"skipped": {
			action:       ActionSkipped,
			existingFile: true,
			wantContains: []string{"already installed", "remove"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tempHome := t.TempDir()
			rcPath := filepath.Join(tempHome, ".bashrc")

			if tc.action == ActionSkipped {
				content := "# bashrc\n" + StartMarker + "\ncompletion\n" + EndMarker + "\n"
				if err := os.WriteFile(rcPath, []byte(content), 0644); err != nil {
					t.Fatal(err)
				}
			} else if tc.existingFile {
				if err := os.WriteFile(rcPath, []byte("# bashrc\n"), 0644); err != nil {
					t.Fatal(err)
				}
			}

			config := GetShellConfig(Bash, tempHome)
			result, err := installRCFile(Bash, config)
			if err != nil {
				t.Fatalf("installRCFile() error = %v", err)
			}

			for _, want := range tc.wantContains {
				if !strings.Contains(strings.ToLower(result.Message), strings.ToLower(want)) {
					t.Errorf("message %q should contain %q", result.Message, want)
				}
			}
		})
	}
}

func TestInstallResultSuccess(t *testing.T) {
	t.Parallel()

	tempHome := t.TempDir()
	rcPath := filepath.Join(tempHome, ".bashrc")

	if err := os.WriteFile(rcPath, []byte("# bashrc\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config := GetShellConfig(Bash, tempHome)
	result, err := installRCFile(Bash, config)
	if err != nil {
		t.Fatalf("installRCFile() error = %v", err)
	}

	if !result.Success {
		t.Error("result.Success should be true")
	}

	if result.ConfigPath != rcPath {
		t.Errorf("result.ConfigPath = %s, want %s", result.ConfigPath, rcPath)
	}

	if result.Shell != Bash {
		t.Errorf("result.Shell = %v, want %v", result.Shell, Bash)
	}
}
