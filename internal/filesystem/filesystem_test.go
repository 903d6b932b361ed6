package filesystem

import "testing"

func TestIsWindowsHost(t *testing.T) {
	if !IsWindowsHost("windows") {
		t.Error("expected windows to be a Windows-family host")
	}
	if IsWindowsHost("linux") || IsWindowsHost("darwin") {
		t.Error("expected non-windows platforms to not be Windows-family")
	}
}

func TestDefaultFSImplementsPlatformer(t *testing.T) {
	var p Platformer = DefaultFS{}
	if p.Platform() == "" {
		t.Error("expected a non-empty platform name")
	}
}
