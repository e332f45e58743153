package executor

import (
	"errors"
	"strings"
	"testing"
)

func TestSystemExecutorExecute(t *testing.T) {
	exec := NewSystemExecutor()

	output, err := exec.Execute("echo", "hello")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if strings.TrimSpace(string(output)) != "hello" {
		t.Errorf("expected hello, got %q", string(output))
	}
}

func TestSystemExecutorExecuteIn(t *testing.T) {
	exec := NewSystemExecutor()
	dir := t.TempDir()

	output, err := exec.ExecuteIn(dir, "pwd")
	if err != nil {
		t.Fatalf("ExecuteIn failed: %v", err)
	}
	if !strings.Contains(strings.TrimSpace(string(output)), dir) {
		t.Errorf("expected working directory %q, got %q", dir, string(output))
	}
}

func TestSystemExecutorExecuteFailure(t *testing.T) {
	exec := NewSystemExecutor()

	if _, err := exec.Execute("false"); err == nil {
		t.Error("expected error for non-zero exit")
	}
}

func TestSystemExecutorLookPath(t *testing.T) {
	exec := NewSystemExecutor()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Errorf("sh should be on PATH: %v", err)
	}
	if _, err := exec.LookPath("definitely-not-a-binary-xyz"); err == nil {
		t.Error("expected error for missing binary")
	}
}

func TestMockExecutorRecordsCalls(t *testing.T) {
	mock := &MockExecutor{}

	_, _ = mock.Execute("vagrant", "reload", "--provision")
	_, _ = mock.ExecuteIn("/home/user/Homestead", "vagrant", "ssh")

	if len(mock.Calls) != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Name != "vagrant" || mock.Calls[0].Dir != "" {
		t.Errorf("unexpected first call: %+v", mock.Calls[0])
	}
	if mock.Calls[1].Dir != "/home/user/Homestead" {
		t.Errorf("expected recorded working directory, got %q", mock.Calls[1].Dir)
	}
}

func TestMockExecutorCustomFuncs(t *testing.T) {
	mock := &MockExecutor{
		ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			return []byte("boom"), errors.New("exit status 1")
		},
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("not found")
		},
	}

	out, err := mock.Execute("vagrant")
	if err == nil || string(out) != "boom" {
		t.Errorf("ExecuteFunc not used: out=%q err=%v", out, err)
	}
	if _, err := mock.LookPath("vagrant"); err == nil {
		t.Error("LookPathFunc not used")
	}
}
