package domain

import "strconv"

// ProjectMetadata is the IPFS-bound summary of a created project, distinct
// from the backend's persisted record. Token counts and prices travel as
// strings; proImage is the first server-returned image URL.
type ProjectMetadata struct {
	ProjectName string `json:"projectName"`
	Category    string `json:"category"`
	IPType      string `json:"iptype"`
	Description string `json:"description"`
	TotalToken  string `json:"totalToken"`
	TokenPrice  string `json:"tokenPrice"`
	ProImage    string `json:"proImage"`
}

// CompanyMetadata is the IPFS-bound summary of a registered company
type CompanyMetadata struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
	Description  string `json:"description"`
}

// BuildProjectMetadata derives the metadata document from a normalized
// submission and the image list the backend returned for the persisted
// record. With no server images the proImage field stays empty.
func BuildProjectMetadata(sub ProjectSubmission, serverImages []string) ProjectMetadata {
	proImage := ""
	if len(serverImages) > 0 {
		proImage = serverImages[0]
	}

	return ProjectMetadata{
		ProjectName: sub.Title,
		Category:    sub.Category,
		IPType:      sub.IPType,
		Description: sub.Description,
		TotalToken:  formatAmount(sub.TotalTokens),
		TokenPrice:  formatAmount(sub.TokenPrice),
		ProImage:    proImage,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
