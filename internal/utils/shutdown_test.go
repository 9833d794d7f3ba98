package utils

import (
	"context"
	"reflect"
	"testing"
)

func TestShutdownRunsTasksInReverseOrder(t *testing.T) {
	sm := NewShutdownManager(context.Background())

	var order []string
	for _, name := range []string{"store", "server"} {
		name := name
		sm.Register(func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	sm.runTasks(context.Background())

	want := []string{"server", "store"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("tasks ran in order %v, want %v", order, want)
	}
}

func TestShutdownContextInheritsParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sm := NewShutdownManager(parent)

	select {
	case <-sm.Context().Done():
		t.Fatal("context cancelled before parent")
	default:
	}

	cancel()
	select {
	case <-sm.Context().Done():
	default:
		t.Error("context did not follow parent cancellation")
	}
}
