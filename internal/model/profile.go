package model

type Profile struct {
	FullName    string `json:"fullname"`
	PhoneNumber string `json:"phonenumber"`
	Address     string `json:"address"`
	Bio         string `json:"bio"`
	UserID      string `json:"userid"`
}

// ProfileUpdate is a partial update request: only the non-nil fields are
// written. UserID is always required.
type ProfileUpdate struct {
	UserID      string  `json:"userid"`
	FullName    *string `json:"fullname,omitempty"`
	PhoneNumber *string `json:"phonenumber,omitempty"`
	Address     *string `json:"address,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

func (u ProfileUpdate) HasFields() bool {
	return u.FullName != nil || u.PhoneNumber != nil || u.Address != nil || u.Bio != nil
}

type UpdateResult struct {
	Updated int64 `json:"updated"`
}
