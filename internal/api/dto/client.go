package dto

import (
	"context"

	"github.com/bizledger/bizledger/internal/domain/client"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateClientRequest struct {
	CompanyName   string             `json:"company_name" validate:"required,max=255"`
	ContactPerson string             `json:"contact_person" validate:"omitempty,max=255"`
	Email         string             `json:"email" validate:"omitempty,email"`
	Phone         string             `json:"phone" validate:"omitempty,max=50"`
	Address       string             `json:"address"`
	City          string             `json:"city" validate:"omitempty,max=100"`
	Country       string             `json:"country" validate:"omitempty,max=100"`
	PostalCode    string             `json:"postal_code" validate:"omitempty,max=20"`
	TaxID         string             `json:"tax_id" validate:"omitempty,max=50"`
	Website       string             `json:"website" validate:"omitempty,url"`
	Industry      string             `json:"industry" validate:"omitempty,max=100"`
	ClientStatus  types.ClientStatus `json:"client_status" validate:"omitempty"`
	Notes         string             `json:"notes"`
}

func (r *CreateClientRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.ClientStatus != "" {
		return r.ClientStatus.Validate()
	}
	return nil
}

func (r *CreateClientRequest) ToClient(ctx context.Context) *client.Client {
	status := r.ClientStatus
	if status == "" {
		status = types.ClientStatusActive
	}
	return &client.Client{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		CompanyName:   r.CompanyName,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		Country:       r.Country,
		PostalCode:    r.PostalCode,
		TaxID:         r.TaxID,
		Website:       r.Website,
		Industry:      r.Industry,
		ClientStatus:  status,
		Notes:         r.Notes,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateClientRequest struct {
	CompanyName   *string             `json:"company_name,omitempty" validate:"omitempty,max=255"`
	ContactPerson *string             `json:"contact_person,omitempty" validate:"omitempty,max=255"`
	Email         *string             `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string             `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address       *string             `json:"address,omitempty"`
	City          *string             `json:"city,omitempty" validate:"omitempty,max=100"`
	Country       *string             `json:"country,omitempty" validate:"omitempty,max=100"`
	PostalCode    *string             `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	TaxID         *string             `json:"tax_id,omitempty" validate:"omitempty,max=50"`
	Website       *string             `json:"website,omitempty" validate:"omitempty,url"`
	Industry      *string             `json:"industry,omitempty" validate:"omitempty,max=100"`
	ClientStatus  *types.ClientStatus `json:"client_status,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.ClientStatus != nil {
		return r.ClientStatus.Validate()
	}
	return nil
}

// Apply copies the provided fields onto the client.
func (r *UpdateClientRequest) Apply(c *client.Client) {
	if r.CompanyName != nil {
		c.CompanyName = *r.CompanyName
	}
	if r.ContactPerson != nil {
		c.ContactPerson = *r.ContactPerson
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	if r.City != nil {
		c.City = *r.City
	}
	if r.Country != nil {
		c.Country = *r.Country
	}
	if r.PostalCode != nil {
		c.PostalCode = *r.PostalCode
	}
	if r.TaxID != nil {
		c.TaxID = *r.TaxID
	}
	if r.Website != nil {
		c.Website = *r.Website
	}
	if r.Industry != nil {
		c.Industry = *r.Industry
	}
	if r.ClientStatus != nil {
		c.ClientStatus = *r.ClientStatus
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
}

type ClientResponse struct {
	*client.Client
}

type ListClientsResponse = types.ListResponse[*ClientResponse]

func NewClientResponse(c *client.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{Client: c}
}

// ClientFilter narrows list queries by relationship status.
type ClientFilter struct {
	types.QueryFilter
	ClientStatus *types.ClientStatus `json:"client_status,omitempty" form:"client_status"`
}

func (f *ClientFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.ClientStatus != nil {
		if err := f.ClientStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid client status filter").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
