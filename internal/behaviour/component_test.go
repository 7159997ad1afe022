package behaviour

import (
	"reflect"
	"testing"
)

type MockComponent struct {
	BaseComponent
	calls []string
}

func (m *MockComponent) Awake()     { m.calls = append(m.calls, "awake") }
func (m *MockComponent) OnEnable()  { m.calls = append(m.calls, "enable") }
func (m *MockComponent) Start()     { m.calls = append(m.calls, "start") }
func (m *MockComponent) Update()    { m.calls = append(m.calls, "update") }
func (m *MockComponent) OnDisable() { m.calls = append(m.calls, "disable") }
func (m *MockComponent) OnDestroy() { m.calls = append(m.calls, "destroy") }

func (m *MockComponent) TypeName() string {
	return "MockComponent"
}

func (m *MockComponent) expect(t *testing.T, want ...string) {
	t.Helper()
	if !reflect.DeepEqual(m.calls, want) {
		t.Errorf("Expected hooks %v, got %v", want, m.calls)
	}
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}
	if !obj.Active() {
		t.Error("New GameObject should be active by default")
	}
	if len(obj.Components()) != 0 {
		t.Errorf("Expected no components, got %d", len(obj.Components()))
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components()) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components()))
	}
	if comp.Owner() != obj {
		t.Error("Component's owner not set")
	}
	if !comp.Enabled() {
		t.Error("Added component should be enabled")
	}
	comp.expect(t, "awake", "enable")
}

func TestGameObjectComponentLookup(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	if got := obj.Component("MockComponent"); got != comp {
		t.Errorf("Expected mock component, got %v", got)
	}
	if got := obj.Component("Missing"); got != nil {
		t.Errorf("Expected nil for unknown type, got %v", got)
	}
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	obj.RemoveComponent(comp)

	if len(obj.Components()) != 0 {
		t.Errorf("Expected 0 components after removal, got %d", len(obj.Components()))
	}
	if comp.Owner() != nil {
		t.Error("Removed component should have no owner")
	}
	comp.expect(t, "awake", "enable", "disable", "destroy")
}

func TestSetEnabledTransitions(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	SetEnabled(comp, true)
	SetEnabled(comp, false)
	SetEnabled(comp, false)
	SetEnabled(comp, true)

	comp.expect(t, "awake", "enable", "disable", "enable")
}

func TestStartRunsOnceBeforeUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	obj.tick()
	obj.tick()

	comp.expect(t, "awake", "enable", "start", "update", "update")
}

func TestDisabledComponentSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	SetEnabled(comp, false)

	obj.tick()

	comp.expect(t, "awake", "enable", "disable")
}

func TestInactiveObjectDefersEnable(t *testing.T) {
	obj := NewGameObject("Test")
	obj.SetActive(false)
	comp := &MockComponent{}
	obj.AddComponent(comp)

	obj.tick()
	comp.expect(t, "awake")

	obj.SetActive(true)
	obj.SetActive(false)
	comp.expect(t, "awake", "enable", "disable")
}
