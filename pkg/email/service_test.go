package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("noreply@salesdesk.test", "SalesDesk", "http://localhost:5173", "")
	assert.False(t, svc.useSendGrid)
	assert.Equal(t, "noreply@salesdesk.test", svc.fromEmail)
	assert.Equal(t, "SalesDesk", svc.fromName)
	assert.Equal(t, "http://localhost:5173", svc.baseURL)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("noreply@salesdesk.test", "SalesDesk", "http://localhost:5173", "SG.test-key")
	assert.True(t, svc.useSendGrid)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestConsoleModeNeverErrors(t *testing.T) {
	svc := NewService("noreply@salesdesk.test", "SalesDesk", "http://localhost:5173", "")

	require.NoError(t, svc.SendWelcomeEmail("rep@example.com", "Rep One"))
	require.NoError(t, svc.SendLeadAssigned("rep@example.com", "Rep One", "Jane Doe"))
	require.NoError(t, svc.SendOpportunityCreated("rep@example.com", "Rep One", "Acme Corp - New Opportunity", 5000))
	require.NoError(t, svc.SendActivityDigest("rep@example.com", "Rep One", 3))
	require.NoError(t, svc.SendExportReady("rep@example.com", "Rep One", "leads", "http://localhost:5173/api/v1/exports/1/download"))
}
