package session

import (
	"strings"
	"testing"
)

func TestShellFromPasswdReader(t *testing.T) {
	data := strings.Join([]string{
		"# comment line",
		"root:x:0:0:root:/root:/bin/bash",
		"user:x:1000:1000:User:/home/user:/bin/zsh",
		"short:line",
		"",
	}, "\n")
	shell, err := shellFromPasswdReader(strings.NewReader(data), "1000")
	if err != nil {
		t.Fatalf("shellFromPasswdReader: %v", err)
	}
	if shell != "/bin/zsh" {
		t.Fatalf("shell = %q, want /bin/zsh", shell)
	}
}

func TestShellFromPasswdReaderMissingUID(t *testing.T) {
	data := "root:x:0:0:root:/root:/bin/bash\n"
	if _, err := shellFromPasswdReader(strings.NewReader(data), "4242"); err == nil {
		t.Fatalf("expected error for unknown uid")
	}
}
