// Package behaviour runs components through an enable/start/update lifecycle.
package behaviour

// Component is a unit of behaviour owned by a GameObject. Hooks run Awake once on
// attach, OnEnable and OnDisable on every enabled transition, Start once before
// the first Update, and Update once per tick while enabled.
//
// Implementations embed BaseComponent and override the hooks they need.
type Component interface {
	Awake()
	OnEnable()
	Start()
	Update()
	OnDisable()
	OnDestroy()

	Enabled() bool
	Owner() *GameObject
	TypeName() string

	base() *BaseComponent
}

type BaseComponent struct {
	enabled bool
	started bool
	owner   *GameObject
}

func (c *BaseComponent) Awake()     {}
func (c *BaseComponent) OnEnable()  {}
func (c *BaseComponent) Start()     {}
func (c *BaseComponent) Update()    {}
func (c *BaseComponent) OnDisable() {}
func (c *BaseComponent) OnDestroy() {}

func (c *BaseComponent) Enabled() bool {
	return c.enabled
}

func (c *BaseComponent) Owner() *GameObject {
	return c.owner
}

func (c *BaseComponent) TypeName() string {
	return "Component"
}

func (c *BaseComponent) base() *BaseComponent {
	return c
}

// SetEnabled switches a component on or off, firing OnEnable or OnDisable when the
// state actually changes. Components of an inactive object only record the flag.
func SetEnabled(c Component, enabled bool) {
	b := c.base()
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	if b.owner != nil && !b.owner.active {
		return
	}
	if enabled {
		c.OnEnable()
	} else {
		c.OnDisable()
	}
}

// GameObject is a named container of components.
type GameObject struct {
	Name string

	active     bool
	destroyed  bool
	components []Component
}

func NewGameObject(name string) *GameObject {
	return &GameObject{Name: name, active: true}
}

func (obj *GameObject) Active() bool {
	return obj.active
}

// SetActive toggles the whole object; enabled components see OnEnable/OnDisable.
func (obj *GameObject) SetActive(active bool) {
	if obj.active == active || obj.destroyed {
		return
	}
	obj.active = active
	for _, c := range obj.components {
		if !c.Enabled() {
			continue
		}
		if active {
			c.OnEnable()
		} else {
			c.OnDisable()
		}
	}
}

// AddComponent attaches c, wakes it and enables it.
func (obj *GameObject) AddComponent(c Component) {
	b := c.base()
	b.owner = obj
	obj.components = append(obj.components, c)
	c.Awake()
	SetEnabled(c, true)
}

func (obj *GameObject) Components() []Component {
	return obj.components
}

// Component returns the first attached component reporting typeName, or nil.
func (obj *GameObject) Component(typeName string) Component {
	for _, c := range obj.components {
		if c.TypeName() == typeName {
			return c
		}
	}
	return nil
}

func (obj *GameObject) RemoveComponent(c Component) {
	for i, attached := range obj.components {
		if attached != c {
			continue
		}
		obj.components = append(obj.components[:i], obj.components[i+1:]...)
		detach(c, obj.active)
		return
	}
}

func (obj *GameObject) tick() {
	if !obj.active {
		return
	}
	for _, c := range obj.components {
		b := c.base()
		if !b.enabled {
			continue
		}
		if !b.started {
			b.started = true
			c.Start()
		}
		c.Update()
	}
}

func (obj *GameObject) destroy() {
	if obj.destroyed {
		return
	}
	for _, c := range obj.components {
		detach(c, obj.active)
	}
	obj.components = nil
	obj.active = false
	obj.destroyed = true
}

func detach(c Component, live bool) {
	b := c.base()
	if b.enabled && live {
		c.OnDisable()
	}
	c.OnDestroy()
	b.owner = nil
	b.enabled = false
}
