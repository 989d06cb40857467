package salesforce

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Query(ctx context.Context, soql string, out any) error {
	args := m.Called(ctx, soql, out)
	if fn, ok := args.Get(1).(func(any)); ok && fn != nil {
		fn(out)
	}
	return args.Error(0)
}

func (m *mockClient) InsertOne(ctx context.Context, sObjectName string, record map[string]any) (string, error) {
	args := m.Called(ctx, sObjectName, record)
	return args.String(0), args.Error(1)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in          string
		first, last string
	}{
		{"", "", ""},
		{"Cher", "", "Cher"},
		{"Jane Smith", "Jane", "Smith"},
		{"  Mary Ann  de Vries ", "Mary Ann de", "Vries"},
	}
	for _, tt := range tests {
		first, last := SplitName(tt.in)
		assert.Equal(t, tt.first, first, tt.in)
		assert.Equal(t, tt.last, last, tt.in)
	}
}

func TestLeadInput_Fields(t *testing.T) {
	in := LeadInput{
		ExternalID: "lead-1",
		FirstName:  "Jane",
		LastName:   "Smith",
		Email:      "jane@example.com",
		State:      "TX",
	}
	f := in.Fields()
	assert.Equal(t, "Smith", f["LastName"])
	assert.Equal(t, "Smith Residence", f["Company"])
	assert.Equal(t, "Jane", f["FirstName"])
	assert.Equal(t, "jane@example.com", f["Email"])
	assert.Equal(t, "TX", f["State"])
	assert.Equal(t, "lead-1", f[ExternalIDField])
	assert.NotContains(t, f, "Phone")
	assert.NotContains(t, f, "Street")
}

func TestFindLeadByExternalID_EscapesQuotes(t *testing.T) {
	mc := new(mockClient)
	mc.On("Query", mock.Anything, "SELECT Id FROM Lead WHERE Roofquote_Lead_Id__c = 'o\\'brien' LIMIT 1", mock.Anything).
		Return(nil, nil)

	id, err := FindLeadByExternalID(context.Background(), mc, "Lead", "o'brien")
	require.NoError(t, err)
	assert.Empty(t, id)
	mc.AssertExpectations(t)
}

func TestCreateLead_Inserts(t *testing.T) {
	mc := new(mockClient)
	mc.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	mc.On("InsertOne", mock.Anything, "Lead", mock.MatchedBy(func(r map[string]any) bool {
		return r["LastName"] == "Smith" && r[ExternalIDField] == "lead-1"
	})).Return("00Qnew", nil)

	id, err := CreateLead(context.Background(), mc, "", LeadInput{ExternalID: "lead-1", LastName: "Smith"})
	require.NoError(t, err)
	assert.Equal(t, "00Qnew", id)
	mc.AssertExpectations(t)
}

func TestCreateLead_ExistingSkipsInsert(t *testing.T) {
	mc := new(mockClient)
	mc.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(nil, func(out any) {
		recs := out.(*[]idRecord)
		*recs = append(*recs, idRecord{ID: "00Qold"})
	})

	id, err := CreateLead(context.Background(), mc, "Lead", LeadInput{ExternalID: "lead-1", LastName: "Smith"})
	require.NoError(t, err)
	assert.Equal(t, "00Qold", id)
	mc.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateLead_Errors(t *testing.T) {
	mc := new(mockClient)
	_, err := CreateLead(context.Background(), mc, "Lead", LeadInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LastName is required")

	mc.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(eris.New("boom"), nil)
	_, err = CreateLead(context.Background(), mc, "Lead", LeadInput{ExternalID: "x", LastName: "Smith"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "find lead x")
}

func TestConnect_MissingKey(t *testing.T) {
	_, err := Connect(JWTConfig{KeyPath: "/nonexistent/key.pem"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read JWT private key")
}
