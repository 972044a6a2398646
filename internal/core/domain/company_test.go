package domain

import "testing"

func validCompanyInput() CompanyInput {
	return CompanyInput{
		Name:         "Northbound IP Holdings",
		Description:  "Licensing and custody of patent portfolios.",
		ContactEmail: "ops@northbound.example",
		ContactPhone: "+15550001111",
		Address:      "200 Harbor Way, Suite 4, Oakland CA",
	}
}

func TestValidateCompany(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CompanyInput)
		want   error
	}{
		{"valid input", func(in *CompanyInput) {}, nil},
		{"short name", func(in *CompanyInput) { in.Name = "A" }, ErrCompanyNameTooShort},
		{"short description", func(in *CompanyInput) { in.Description = "too short" }, ErrCompanyDescriptionTooShort},
		{"bad email", func(in *CompanyInput) { in.ContactEmail = "not-an-email" }, ErrCompanyEmailInvalid},
		{"email without domain dot", func(in *CompanyInput) { in.ContactEmail = "a@b" }, ErrCompanyEmailInvalid},
		{"short phone", func(in *CompanyInput) { in.ContactPhone = "555" }, ErrCompanyPhoneTooShort},
		{"short address", func(in *CompanyInput) { in.Address = "nowhere" }, ErrCompanyAddressTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCompanyInput()
			tt.mutate(&in)
			if got := ValidateCompany(in); got != tt.want {
				t.Errorf("ValidateCompany = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildCompanyMetadata(t *testing.T) {
	in := validCompanyInput()
	meta := BuildCompanyMetadata(in)

	if meta.Name != in.Name || meta.ContactEmail != in.ContactEmail {
		t.Errorf("metadata does not mirror input: %+v", meta)
	}
	if meta.Description != in.Description {
		t.Errorf("Description = %q", meta.Description)
	}
}
