package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// SMTPAuth is the nested credential pair stored inside the settings row.
type SMTPAuth struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// EmailSettings is a singleton row (id 1) holding the outbound mail
// configuration. When Enabled is false the dispatcher suppresses delivery
// but still reports success to callers.
type EmailSettings struct {
	ID      uint           `gorm:"primaryKey" json:"-"`
	Enabled bool           `json:"enabled"`
	Host    string         `gorm:"size:255" json:"host"`
	Port    int            `json:"port"`
	Secure  bool           `json:"secure"`
	Auth    datatypes.JSON `gorm:"column:auth" json:"auth"`
	From    string         `gorm:"size:255;column:from_address" json:"from"`
}

// AuthConfig decodes the stored credential pair.
func (s *EmailSettings) AuthConfig() (SMTPAuth, error) {
	var a SMTPAuth
	if len(s.Auth) == 0 {
		return a, nil
	}
	err := json.Unmarshal(s.Auth, &a)
	return a, err
}

// SetAuth encodes and stores the credential pair.
func (s *EmailSettings) SetAuth(a SMTPAuth) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return err
	}
	s.Auth = datatypes.JSON(raw)
	return nil
}
