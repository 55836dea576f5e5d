package store

import "testing"

func TestSessionStore(t *testing.T) {
	t.Run("No Session Initially", func(t *testing.T) {
		s := NewSessionStore(NewMemoryKV(), nil)
		if s.Current() != nil {
			t.Error("expected no session")
		}
	})

	t.Run("Save And Current", func(t *testing.T) {
		s := NewSessionStore(NewMemoryKV(), nil)
		s.Save("a@b.com", true)

		session := s.Current()
		if session == nil {
			t.Fatal("expected a session")
		}
		if session.Email != "a@b.com" || !session.Remember {
			t.Errorf("unexpected session: %+v", session)
		}
	})

	t.Run("Save Replaces Wholesale", func(t *testing.T) {
		s := NewSessionStore(NewMemoryKV(), nil)
		s.Save("first@b.com", true)
		s.Save("second@b.com", false)

		session := s.Current()
		if session == nil || session.Email != "second@b.com" || session.Remember {
			t.Errorf("unexpected session: %+v", session)
		}
	})

	t.Run("Remember Stores Email Separately", func(t *testing.T) {
		s := NewSessionStore(NewMemoryKV(), nil)
		s.Save("a@b.com", true)

		if got := s.RememberedEmail(); got != "a@b.com" {
			t.Errorf("expected remembered email, got %q", got)
		}
	})

	t.Run("No Remember Clears Slot", func(t *testing.T) {
		s := NewSessionStore(NewMemoryKV(), nil)
		s.Save("a@b.com", true)
		s.Save("a@b.com", false)

		if got := s.RememberedEmail(); got != "" {
			t.Errorf("expected empty remembered email, got %q", got)
		}
	})

	t.Run("Logout Keeps Remembered Email", func(t *testing.T) {
		s := NewSessionStore(NewMemoryKV(), nil)
		s.Save("a@b.com", true)
		s.Logout()

		if s.Current() != nil {
			t.Error("expected session to be gone")
		}
		if got := s.RememberedEmail(); got != "a@b.com" {
			t.Errorf("remembered email should survive logout, got %q", got)
		}
	})

	t.Run("Corrupt Session Treated As Absent", func(t *testing.T) {
		kv := NewMemoryKV()
		kv.Set(SessionKey, []byte("{broken"))

		s := NewSessionStore(kv, nil)
		if s.Current() != nil {
			t.Error("corrupt session should read as nil")
		}
	})
}
