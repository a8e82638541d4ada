package alert

import (
	"fmt"
	"strings"
	"time"
)

type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeSuccess Type = "success"
	TypeUrgent  Type = "urgent"
)

func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeWarning, TypeSuccess, TypeUrgent:
		return true
	}
	return false
}

type Alert struct {
	ID        string
	Message   string
	Type      Type
	IsActive  bool
	CreatedAt time.Time
}

func (a Alert) Validate() error {
	if strings.TrimSpace(a.Message) == "" {
		return fmt.Errorf("message is required")
	}
	if !a.Type.Valid() {
		return fmt.Errorf("alert_type must be one of info, warning, success, urgent")
	}
	return nil
}
