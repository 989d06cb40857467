package salesforce

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// DefaultLeadObject is the standard Lead sObject.
const DefaultLeadObject = "Lead"

// ExternalIDField carries our lead ID so replays can detect prior inserts.
const ExternalIDField = "Roofquote_Lead_Id__c"

// LeadInput is a homeowner lead mapped onto Lead fields.
type LeadInput struct {
	ExternalID  string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Street      string
	City        string
	State       string
	PostalCode  string
	Country     string
	LeadSource  string
	Description string
}

// SplitName splits a full name into first and last. Salesforce requires a
// last name, so a single word becomes the last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return "", parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

// Fields returns the record map for InsertOne. Empty values are omitted.
func (in LeadInput) Fields() map[string]any {
	fields := map[string]any{
		"LastName": in.LastName,
		"Company":  in.LastName + " Residence",
		"Status":   "Open - Not Contacted",
	}
	set := func(k, v string) {
		if v != "" {
			fields[k] = v
		}
	}
	set("FirstName", in.FirstName)
	set("Email", in.Email)
	set("Phone", in.Phone)
	set("Street", in.Street)
	set("City", in.City)
	set("State", in.State)
	set("PostalCode", in.PostalCode)
	set("Country", in.Country)
	set("LeadSource", in.LeadSource)
	set("Description", in.Description)
	set(ExternalIDField, in.ExternalID)
	return fields
}

type idRecord struct {
	ID string `json:"Id" salesforce:"Id"`
}

// FindLeadByExternalID returns the Salesforce ID of a lead already inserted
// for externalID, or "".
func FindLeadByExternalID(ctx context.Context, c Client, object, externalID string) (string, error) {
	soql := fmt.Sprintf("SELECT Id FROM %s WHERE %s = '%s' LIMIT 1",
		object, ExternalIDField, escapeSoql(externalID))

	var recs []idRecord
	if err := c.Query(ctx, soql, &recs); err != nil {
		return "", eris.Wrap(err, fmt.Sprintf("sf: find lead %s", externalID))
	}
	if len(recs) == 0 {
		return "", nil
	}
	return recs[0].ID, nil
}

// CreateLead inserts in unless a lead with the same external ID exists, and
// returns the Salesforce ID either way.
func CreateLead(ctx context.Context, c Client, object string, in LeadInput) (string, error) {
	if object == "" {
		object = DefaultLeadObject
	}
	if in.LastName == "" {
		return "", eris.New("sf: lead LastName is required")
	}
	if in.ExternalID != "" {
		id, err := FindLeadByExternalID(ctx, c, object, in.ExternalID)
		if err != nil {
			return "", err
		}
		if id != "" {
			return id, nil
		}
	}

	id, err := c.InsertOne(ctx, object, in.Fields())
	if err != nil {
		return "", eris.Wrap(err, "sf: create lead")
	}
	return id, nil
}

// escapeSoql escapes single quotes in SOQL string literals to prevent injection.
func escapeSoql(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
