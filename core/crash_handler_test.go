package core

import (
	"os"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func stubExit(t *testing.T) chan int {
	t.Helper()
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	t.Cleanup(func() {
		exit = os.Exit
		SetCrashScreen(nil)
	})
	return codes
}

func TestHandleCrashNil(t *testing.T) {
	codes := stubExit(t)
	HandleCrash(nil)
	select {
	case code := <-codes:
		t.Errorf("Expected no exit for nil panic, got code %d", code)
	default:
	}
}

func TestHandleCrashFinalizesScreen(t *testing.T) {
	codes := stubExit(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	SetCrashScreen(screen)

	HandleCrash("boom")

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if crashScreen.Load() != nil {
		t.Error("Expected crash screen cleared after crash")
	}
}

func TestGoRecoversPanic(t *testing.T) {
	codes := stubExit(t)

	Go(func() { panic("worker") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected goroutine panic to reach HandleCrash")
	}
}
