package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/knowledge"
)

const testKnowledgePlayerID = "99999999-8888-7777-6666-555555555555"

func TestHandleLearnRecipe(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		svc            *stubKnowledge
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: KnowledgeRequest{PlayerID: testKnowledgePlayerID, RecipeID: 2},
			svc: &stubKnowledge{learn: func(_ context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
				assert.Equal(t, testKnowledgePlayerID, playerID)
				assert.Equal(t, 2, recipeID)
				return &domain.PlayerKnownRecipe{PlayerID: playerID, RecipeID: recipeID}, nil
			}},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"recipe_id":2`,
		},
		{
			name:        "Already Known",
			requestBody: KnowledgeRequest{PlayerID: testKnowledgePlayerID, RecipeID: 2},
			svc: &stubKnowledge{learn: func(context.Context, string, int) (*domain.PlayerKnownRecipe, error) {
				return nil, domain.ErrRecipeAlreadyKnown
			}},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgRecipeAlreadyKnownHTTP,
		},
		{
			name:        "Recipe Missing",
			requestBody: KnowledgeRequest{PlayerID: testKnowledgePlayerID, RecipeID: 42},
			svc: &stubKnowledge{learn: func(context.Context, string, int) (*domain.PlayerKnownRecipe, error) {
				return nil, domain.ErrRecipeNotFound
			}},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgRecipeNotFoundHTTP,
		},
		{
			name:           "Missing Recipe ID",
			requestBody:    KnowledgeRequest{PlayerID: testKnowledgePlayerID},
			svc:            &stubKnowledge{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/knowledge/learn", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleLearnRecipe(tt.svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleForgetRecipe(t *testing.T) {
	InitValidator()

	t.Run("forgets known recipe", func(t *testing.T) {
		svc := &stubKnowledge{forget: func(context.Context, string, int) error { return nil }}

		body, _ := json.Marshal(KnowledgeRequest{PlayerID: testKnowledgePlayerID, RecipeID: 2})
		req := httptest.NewRequest(http.MethodPost, "/knowledge/forget", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		HandleForgetRecipe(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Recipe forgotten")
	})

	t.Run("unknown recipe is 404", func(t *testing.T) {
		svc := &stubKnowledge{forget: func(context.Context, string, int) error {
			return domain.ErrRecipeNotKnown
		}}

		body, _ := json.Marshal(KnowledgeRequest{PlayerID: testKnowledgePlayerID, RecipeID: 2})
		req := httptest.NewRequest(http.MethodPost, "/knowledge/forget", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		HandleForgetRecipe(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleListKnownRecipes(t *testing.T) {
	InitValidator()

	t.Run("returns ledger entries", func(t *testing.T) {
		svc := &stubKnowledge{listKnown: func(_ context.Context, playerID string) ([]knowledge.KnownRecipeDetail, error) {
			assert.Equal(t, testKnowledgePlayerID, playerID)
			return []knowledge.KnownRecipeDetail{{
				PlayerKnownRecipe: domain.PlayerKnownRecipe{PlayerID: playerID, RecipeID: 1, MasteryLevel: 2},
				RecipeName:        "Iron Ingot",
			}}, nil
		}}

		req := httptest.NewRequest(http.MethodGet, "/knowledge?player_id="+testKnowledgePlayerID, nil)
		w := httptest.NewRecorder()
		HandleListKnownRecipes(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"recipe_name":"Iron Ingot"`)
		assert.Contains(t, w.Body.String(), `"mastery_level":2`)
	})

	t.Run("missing player id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/knowledge", nil)
		w := httptest.NewRecorder()
		HandleListKnownRecipes(&stubKnowledge{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
