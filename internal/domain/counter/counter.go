package counter

import (
	"fmt"
	"strings"
	"time"
)

// Counter is a staffed position tickets are called to, e.g. "Window 3".
type Counter struct {
	id        uint
	sid       string
	name      string
	active    bool
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewCounter creates a new active counter
func NewCounter(sid, name string) (*Counter, error) {
	name = strings.TrimSpace(name)
	if sid == "" {
		return nil, fmt.Errorf("counter SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("counter name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("counter name cannot exceed 50 characters")
	}

	now := time.Now()
	return &Counter{
		sid:       sid,
		name:      name,
		active:    true,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCounter reconstructs a counter from persistence
func ReconstructCounter(id uint, sid, name string, active bool, version int, createdAt, updatedAt time.Time) (*Counter, error) {
	if id == 0 {
		return nil, fmt.Errorf("counter ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("counter SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("counter name is required")
	}

	return &Counter{
		id:        id,
		sid:       sid,
		name:      name,
		active:    active,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the counter ID
func (c *Counter) ID() uint {
	return c.id
}

// SID returns the public short identifier
func (c *Counter) SID() string {
	return c.sid
}

// Name returns the counter name
func (c *Counter) Name() string {
	return c.name
}

// IsActive reports whether the counter can receive calls
func (c *Counter) IsActive() bool {
	return c.active
}

// Version returns the aggregate version for optimistic locking
func (c *Counter) Version() int {
	return c.version
}

// CreatedAt returns when the counter was created
func (c *Counter) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the counter was last updated
func (c *Counter) UpdatedAt() time.Time {
	return c.updatedAt
}

// SetID sets the counter ID (only for persistence layer use)
func (c *Counter) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("counter ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("counter ID cannot be zero")
	}
	c.id = id
	return nil
}

// Rename changes the counter's display name
func (c *Counter) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("counter name is required")
	}
	if len(name) > 50 {
		return fmt.Errorf("counter name cannot exceed 50 characters")
	}

	c.name = name
	c.updatedAt = time.Now()
	c.version++

	return nil
}

// Activate puts the counter back in service
func (c *Counter) Activate() {
	if c.active {
		return
	}

	c.active = true
	c.updatedAt = time.Now()
	c.version++
}

// Deactivate takes the counter out of service
func (c *Counter) Deactivate() {
	if !c.active {
		return
	}

	c.active = false
	c.updatedAt = time.Now()
	c.version++
}
