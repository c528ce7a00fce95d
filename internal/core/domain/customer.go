package domain

// Customer is the record managed by the protected CRUD endpoints. Field names
// on the wire follow the existing client contract.
type Customer struct {
	ID            int64   `json:"customerid"`
	Name          *string `json:"NAME"`
	Address       *string `json:"ADDRESS"`
	Phone         *string `json:"PHONE"`
	Fax           *string `json:"FAX"`
	Email         *string `json:"EMAIL"`
	ContactPerson *string `json:"CONTACT_PERSON"`
	Website       *string `json:"WEBSITE"`
}

// CustomerPatch lists the fields to change on update. Nil fields are left as is.
type CustomerPatch struct {
	Name          *string
	Address       *string
	Phone         *string
	Fax           *string
	Email         *string
	ContactPerson *string
	Website       *string
}

// Apply copies every non-nil patch field onto c.
func (p CustomerPatch) Apply(c *Customer) {
	set := func(dst **string, v *string) {
		if v != nil {
			*dst = v
		}
	}
	set(&c.Name, p.Name)
	set(&c.Address, p.Address)
	set(&c.Phone, p.Phone)
	set(&c.Fax, p.Fax)
	set(&c.Email, p.Email)
	set(&c.ContactPerson, p.ContactPerson)
	set(&c.Website, p.Website)
}
