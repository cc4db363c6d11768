package salon

import (
	"bytes"
	"encoding/json"

	"github.com/xw1nchester/nailsite/pkg/types"
)

// Viewer is the authenticated user looking at a site. A nil *Viewer is an
// anonymous visitor.
type Viewer struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Salon    OwnedRef `json:"salon"`
}

// OwnedRef is the id of the salon the viewer owns, 0 if none. The backend
// sends either a bare id or a nested object.
type OwnedRef int

func (o *OwnedRef) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = 0
		return nil
	}

	var id types.IntOrString
	if err := json.Unmarshal(b, &id); err == nil {
		*o = OwnedRef(id)
		return nil
	}

	var obj struct {
		ID types.IntOrString `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		*o = 0
		return nil
	}

	*o = OwnedRef(obj.ID)

	return nil
}

func (v *Viewer) LoggedIn() bool {
	return v != nil
}

func (v *Viewer) OwnsSalon() bool {
	return v != nil && v.Salon != 0
}

func (v *Viewer) Owns(s *Salon) bool {
	return v != nil && s != nil && s.ID != 0 && int(v.Salon) == s.ID
}
