package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/mazewalk/internal/world"
)

func testFactory(t *testing.T, id string) Factory {
	t.Helper()
	layout, err := world.ParseRows([]string{"###", "#^#", "###"})
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	layout.ID = id
	layout.Name = strings.ToUpper(id)
	return func() world.Layout { return layout }
}

func TestRegisterAndCreate(t *testing.T) {
	const id = "registry-test-a"
	Register(id, testFactory(t, id))
	t.Cleanup(func() { unregister(id) })

	if !Exists(id) {
		t.Fatalf("Exists(%q) = false after Register", id)
	}

	layout, err := Create(id)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if layout.ID != id || layout.Width != 3 {
		t.Errorf("Create() = %+v, expected the registered layout", layout)
	}

	var found *LayoutInfo
	for _, info := range List() {
		if info.ID == id {
			found = &info
		}
	}
	if found == nil {
		t.Fatalf("List() does not contain %q", id)
	}
	if found.Title != "REGISTRY-TEST-A" || found.Source != "builtin" {
		t.Errorf("LayoutInfo = %+v, expected title and builtin source", *found)
	}
}

func TestAddDuplicate(t *testing.T) {
	const id = "registry-test-b"
	if err := Add(id, testFactory(t, id)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	t.Cleanup(func() { unregister(id) })

	if err := Add(id, testFactory(t, id)); err == nil {
		t.Error("Expected an error for a duplicate ID")
	}

	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID should panic")
		}
	}()
	Register(id, testFactory(t, id))
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("registry-test-missing"); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("Create() error = %v, expected ErrUnknownLayout", err)
	}
	if Exists("registry-test-missing") {
		t.Error("Exists() = true for an unknown layout")
	}
}

func TestListSorted(t *testing.T) {
	for _, id := range []string{"registry-test-z", "registry-test-m"} {
		Register(id, testFactory(t, id))
		t.Cleanup(func() { unregister(id) })
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
