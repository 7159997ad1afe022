package behaviour

// ComponentManager owns the registered objects and advances them one frame per
// UpdateAll.
type ComponentManager struct {
	objects []*GameObject
	frame   uint64
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{}
}

func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	for _, o := range cm.objects {
		if o == obj {
			return
		}
	}
	cm.objects = append(cm.objects, obj)
}

// UnregisterGameObject removes obj immediately and destroys its components.
func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	kept := cm.objects[:0]
	for _, o := range cm.objects {
		if o == obj {
			o.destroy()
			continue
		}
		kept = append(kept, o)
	}
	cm.objects = kept
}

// UpdateAll ticks every active object in registration order.
func (cm *ComponentManager) UpdateAll() {
	for _, obj := range cm.objects {
		obj.tick()
	}
	cm.frame++
}

// Frame is the number of completed UpdateAll calls.
func (cm *ComponentManager) Frame() uint64 {
	return cm.frame
}

func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// Clear destroys every object and resets the frame counter.
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.objects {
		obj.destroy()
	}
	cm.objects = nil
	cm.frame = 0
}
