// Package session persists the signed-in user identifier between runs. It is
// the only state kept on disk, everything else is refetched from the backend.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
)

type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored session, or nil when nobody is signed in.
func (s *Store) Load() (*Session, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var session Session
	if err := json.Unmarshal(b, &session); err != nil {
		return nil, err
	}

	if session.UserID == "" {
		return nil, nil
	}

	return &session, nil
}

func (s *Store) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	b, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, b, 0o600)
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// Login stores the given identifier, either an employee id or a phone-derived
// one.
func (s *Store) Login(userID string) (*Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errorx.New(errorx.BadRequest, "请输入用户标识")
	}

	session := &Session{UserID: userID, CreatedAt: time.Now()}
	if err := s.Save(session); err != nil {
		return nil, err
	}

	return session, nil
}

// LoginWithPhone derives the identifier from a phone number the same way the
// backend expects it.
func (s *Store) LoginWithPhone(phone string) (*Session, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errorx.New(errorx.BadRequest, "请输入手机号")
	}

	return s.Login("phone_" + phone)
}

// LoadOrCreate returns the stored session, creating an anonymous one on first
// use.
func (s *Store) LoadOrCreate() (*Session, error) {
	session, err := s.Load()
	if err != nil {
		return nil, err
	}

	if session != nil {
		return session, nil
	}

	return s.Login("guest_" + uuid.NewString())
}
