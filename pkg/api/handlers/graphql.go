package handlers

import (
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/labstack/echo/v4"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/graph"
	"github.com/salesdeskhq/salesdesk/pkg/conversion"
	"github.com/salesdeskhq/salesdesk/pkg/leads"
	"github.com/salesdeskhq/salesdesk/pkg/opportunities"
	"github.com/salesdeskhq/salesdesk/pkg/timeline"
)

// GraphQLHandler creates GraphQL server handler
type GraphQLHandler struct {
	resolver *graph.Resolver
}

// NewGraphQLHandler creates a new GraphQL handler
func NewGraphQLHandler(
	db *ent.Client,
	leadService *leads.Service,
	conversionService *conversion.Service,
	timelineService *timeline.Service,
	opportunityService *opportunities.Service,
) *GraphQLHandler {
	resolver := &graph.Resolver{
		DB:                 db,
		LeadService:        leadService,
		ConversionService:  conversionService,
		TimelineService:    timelineService,
		OpportunityService: opportunityService,
	}

	return &GraphQLHandler{
		resolver: resolver,
	}
}

// GraphQLEndpoint handles GraphQL queries
func (h *GraphQLHandler) GraphQLEndpoint(c echo.Context) error {
	srv := handler.NewDefaultServer(graph.NewExecutableSchema(graph.Config{Resolvers: h.resolver}))

	srv.ServeHTTP(c.Response(), c.Request())
	return nil
}

// Playground serves the GraphQL Playground interface
func (h *GraphQLHandler) Playground(c echo.Context) error {
	pg := playground.Handler("GraphQL Playground", "/api/v1/graphql")
	pg.ServeHTTP(c.Response(), c.Request())
	return nil
}
