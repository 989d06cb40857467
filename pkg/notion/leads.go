package notion

import (
	"context"
	"time"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
)

// Property names in the leads database.
const (
	PropName      = "Name"
	PropLeadID    = "Lead ID"
	PropEmail     = "Email"
	PropPhone     = "Phone"
	PropAddress   = "Address"
	PropEstimate  = "Estimate"
	PropLow       = "Low Estimate"
	PropHigh      = "High Estimate"
	PropRegion    = "Region"
	PropMaterial  = "Material"
	PropSource    = "Source"
	PropStatus    = "Status"
	PropSubmitted = "Submitted"
)

// NewLeadStatus is the status given to freshly created lead pages.
const NewLeadStatus = "New"

// LeadPage is the flattened lead written to Notion.
type LeadPage struct {
	LeadID    string
	Name      string
	Email     string
	Phone     string
	Address   string
	Estimate  string
	Low       float64
	High      float64
	Region    string
	Material  string
	Source    string
	Submitted time.Time
}

func richText(v string) []notionapi.RichText {
	return []notionapi.RichText{
		{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: v}},
	}
}

// LeadProperties builds page properties for p. Empty optional values are
// left out so Notion does not reject blank emails or phone numbers.
func LeadProperties(p LeadPage) notionapi.Properties {
	props := notionapi.Properties{
		PropName:    notionapi.TitleProperty{Type: notionapi.PropertyTypeTitle, Title: richText(p.Name)},
		PropLeadID:  notionapi.RichTextProperty{Type: notionapi.PropertyTypeRichText, RichText: richText(p.LeadID)},
		PropAddress: notionapi.RichTextProperty{Type: notionapi.PropertyTypeRichText, RichText: richText(p.Address)},
		PropStatus:  notionapi.StatusProperty{Status: notionapi.Status{Name: NewLeadStatus}},
	}
	if p.Email != "" {
		props[PropEmail] = notionapi.EmailProperty{Type: notionapi.PropertyTypeEmail, Email: p.Email}
	}
	if p.Phone != "" {
		props[PropPhone] = notionapi.PhoneNumberProperty{Type: notionapi.PropertyTypePhoneNumber, PhoneNumber: p.Phone}
	}
	if p.Estimate != "" {
		props[PropEstimate] = notionapi.RichTextProperty{Type: notionapi.PropertyTypeRichText, RichText: richText(p.Estimate)}
		props[PropLow] = notionapi.NumberProperty{Type: notionapi.PropertyTypeNumber, Number: p.Low}
		props[PropHigh] = notionapi.NumberProperty{Type: notionapi.PropertyTypeNumber, Number: p.High}
	}
	if p.Region != "" {
		props[PropRegion] = notionapi.SelectProperty{Type: notionapi.PropertyTypeSelect, Select: notionapi.Option{Name: p.Region}}
	}
	if p.Material != "" {
		props[PropMaterial] = notionapi.RichTextProperty{Type: notionapi.PropertyTypeRichText, RichText: richText(p.Material)}
	}
	if p.Source != "" {
		props[PropSource] = notionapi.SelectProperty{Type: notionapi.PropertyTypeSelect, Select: notionapi.Option{Name: p.Source}}
	}
	if !p.Submitted.IsZero() {
		d := notionapi.Date(p.Submitted)
		props[PropSubmitted] = notionapi.DateProperty{Type: notionapi.PropertyTypeDate, Date: &notionapi.DateObject{Start: &d}}
	}
	return props
}

// FindLeadPage returns the page already written for leadID, or nil.
func FindLeadPage(ctx context.Context, c Client, dbID, leadID string) (*notionapi.Page, error) {
	resp, err := c.QueryDatabase(ctx, dbID, &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: PropLeadID,
			RichText: &notionapi.TextFilterCondition{Equals: leadID},
		},
		PageSize: 1,
	})
	if err != nil {
		return nil, eris.Wrap(err, "notion: find lead page")
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// CreateLeadPage writes p to the database unless a page with the same lead
// ID already exists, so replays do not duplicate leads.
func CreateLeadPage(ctx context.Context, c Client, dbID string, p LeadPage) (*notionapi.Page, error) {
	if dbID == "" {
		return nil, eris.New("notion: lead database id is required")
	}
	if p.LeadID != "" {
		existing, err := FindLeadPage(ctx, c, dbID, p.LeadID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	page, err := c.CreatePage(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(dbID),
		},
		Properties: LeadProperties(p),
	})
	if err != nil {
		return nil, eris.Wrap(err, "notion: create lead page")
	}
	return page, nil
}
