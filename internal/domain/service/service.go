package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// codeRegex restricts service codes to short uppercase prefixes used on
// ticket labels, e.g. "A" or "REG".
var codeRegex = regexp.MustCompile(`^[A-Z0-9]{1,4}$`)

// Service is a bookable service in the catalog. Each service runs at
// most one queue per operating day; the code prefixes ticket labels so
// displays can tell lines apart.
type Service struct {
	id               uint
	sid              string
	name             string
	code             string
	description      string
	avgHandleSeconds uint
	active           bool
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewService creates a new active service
func NewService(sid, name, code, description string, avgHandleSeconds uint) (*Service, error) {
	name = strings.TrimSpace(name)
	if sid == "" {
		return nil, fmt.Errorf("service SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("service name cannot exceed 100 characters")
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegex.MatchString(code) {
		return nil, fmt.Errorf("service code must be 1-4 uppercase letters or digits")
	}

	now := time.Now()
	return &Service{
		sid:              sid,
		name:             name,
		code:             code,
		description:      strings.TrimSpace(description),
		avgHandleSeconds: avgHandleSeconds,
		active:           true,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructService reconstructs a service from persistence
func ReconstructService(
	id uint,
	sid, name, code, description string,
	avgHandleSeconds uint,
	active bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Service, error) {
	if id == 0 {
		return nil, fmt.Errorf("service ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("service SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}

	return &Service{
		id:               id,
		sid:              sid,
		name:             name,
		code:             code,
		description:      description,
		avgHandleSeconds: avgHandleSeconds,
		active:           active,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

// ID returns the service ID
func (s *Service) ID() uint {
	return s.id
}

// SID returns the public short identifier
func (s *Service) SID() string {
	return s.sid
}

// Name returns the service name
func (s *Service) Name() string {
	return s.name
}

// Code returns the label prefix
func (s *Service) Code() string {
	return s.code
}

// Description returns the service description
func (s *Service) Description() string {
	return s.description
}

// AvgHandleSeconds returns the expected seconds per customer, 0 when unknown
func (s *Service) AvgHandleSeconds() uint {
	return s.avgHandleSeconds
}

// IsActive reports whether the service can open new queues
func (s *Service) IsActive() bool {
	return s.active
}

// Version returns the aggregate version for optimistic locking
func (s *Service) Version() int {
	return s.version
}

// CreatedAt returns when the service was created
func (s *Service) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the service was last updated
func (s *Service) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the service ID (only for persistence layer use)
func (s *Service) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service ID cannot be zero")
	}
	s.id = id
	return nil
}

// Update changes the display fields of the service
func (s *Service) Update(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("service name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("service name cannot exceed 100 characters")
	}

	s.name = name
	s.description = strings.TrimSpace(description)
	s.updatedAt = time.Now()
	s.version++

	return nil
}

// SetAvgHandleTime tunes the expected handling time used for wait estimates
func (s *Service) SetAvgHandleTime(seconds uint) {
	if s.avgHandleSeconds == seconds {
		return
	}

	s.avgHandleSeconds = seconds
	s.updatedAt = time.Now()
	s.version++
}

// Activate re-enables the service
func (s *Service) Activate() {
	if s.active {
		return
	}

	s.active = true
	s.updatedAt = time.Now()
	s.version++
}

// Deactivate retires the service without deleting history
func (s *Service) Deactivate() {
	if !s.active {
		return
	}

	s.active = false
	s.updatedAt = time.Now()
	s.version++
}

// FormatLabel renders the display label for a ticket number, e.g. "A-042"
func (s *Service) FormatLabel(number int) string {
	return fmt.Sprintf("%s-%03d", s.code, number)
}
