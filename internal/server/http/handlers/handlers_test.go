package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
	"github.com/alexh7799/coderr/internal/server/http/dto"
	"github.com/alexh7799/coderr/internal/server/http/middleware"
	"github.com/alexh7799/coderr/internal/usecase"
	testhelpers "github.com/alexh7799/coderr/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, userID int64, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if userID != 0 {
			c.Set(middleware.UserIDContextKey, userID)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body not decodable: %v", err)
	}
	return body.Error
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: bad", domainErrors.ErrValidation), http.StatusBadRequest},
		{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: nope", domainErrors.ErrForbidden), http.StatusForbidden},
		{domainErrors.ErrNotFound, http.StatusNotFound},
		{domainErrors.ErrAlreadyExists, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		writeError(c, tc.err)
		if w.Code != tc.code {
			t.Fatalf("error %v mapped to %d, want %d", tc.err, w.Code, tc.code)
		}
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegistrationRequest{
		Username:         "exampleUsername",
		Email:            "example@mail.de",
		Password:         "examplePassword",
		RepeatedPassword: "examplePassword",
		Type:             "customer",
	})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
		if input.Username != "exampleUsername" || input.Role != model.RoleCustomer {
			t.Fatalf("unexpected input passed to facade: %+v", input)
		}
		return &model.User{ID: 9, Username: input.Username, Email: input.Email}, "session-token", nil
	}})

	resp := performRequest(t, http.MethodPost, "/registration/", "/registration/", handler.Register, 0, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	var out dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if out.Token != "session-token" || out.UserID != 9 {
		t.Fatalf("unexpected response body: %+v", out)
	}
}

func TestAuthHandlerRegisterValidation(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
		return nil, "", fmt.Errorf("%w: passwords do not match", domainErrors.ErrValidation)
	}})
	body, _ := json.Marshal(dto.RegistrationRequest{Username: "u", Email: "e@x.de", Password: "a", RepeatedPassword: "b", Type: "customer"})

	resp := performRequest(t, http.MethodPost, "/registration/", "/registration/", handler.Register, 0, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if decodeError(t, resp) == "" {
		t.Fatalf("expected error message in body")
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Username: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login/", "/login/", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, 0, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	failing := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(ctx context.Context, username, password string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}})
	resp = performRequest(t, http.MethodPost, "/login/", "/login/", failing.Login, 0, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for wrong credentials, got %d", resp.Code)
	}
}

func TestProfileHandlerUpdateWhitelist(t *testing.T) {
	handler := NewProfileHandler(testhelpers.ProfileFacadeStub{})

	resp := performRequest(t, http.MethodPatch, "/profile/:pk/", "/profile/1/", handler.Update, 1, []byte(`{"username":"hacked"}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for disallowed key, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPatch, "/profile/:pk/", "/profile/1/", handler.Update, 1, []byte(`{"location":"Berlin"}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestProfileHandlerGetNotFound(t *testing.T) {
	handler := NewProfileHandler(testhelpers.ProfileFacadeStub{ProfileFn: func(ctx context.Context, id int64) (*model.User, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp := performRequest(t, http.MethodGet, "/profile/:pk/", "/profile/7/", handler.Get, 1, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOfferHandlerListPagination(t *testing.T) {
	var gotFilter repository.OfferFilter
	catalog := testhelpers.CatalogFacadeStub{OffersFn: func(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, int64, error) {
		gotFilter = filter
		return []model.Offer{*testhelpers.SampleOffer(1, 3)}, 25, nil
	}}
	handler := NewOfferHandler(catalog, testhelpers.ProfileFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/offers/", "/offers/?page=2&page_size=10&creator_id=3&ordering=-min_price", handler.List, 0, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotFilter.Offset != 10 || gotFilter.Limit != 10 {
		t.Fatalf("pagination not translated: %+v", gotFilter)
	}
	if gotFilter.CreatorID == nil || *gotFilter.CreatorID != 3 {
		t.Fatalf("creator filter not translated: %+v", gotFilter)
	}
	if gotFilter.SortBy != repository.OfferSortMinPrice || !gotFilter.SortDesc {
		t.Fatalf("ordering not translated: %+v", gotFilter)
	}

	var out dto.OfferListResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if out.Count != 25 {
		t.Fatalf("unexpected count %d", out.Count)
	}
	if out.Next == nil || out.Previous == nil {
		t.Fatalf("page 2 of 25 should have both links: %+v", out)
	}
	if len(out.Results) != 1 || out.Results[0].UserDetails == nil {
		t.Fatalf("owner details not attached: %+v", out.Results)
	}
	if len(out.Results[0].Details) != 3 || out.Results[0].Details[0].URL == "" {
		t.Fatalf("detail references missing: %+v", out.Results[0].Details)
	}
}

func TestOfferHandlerListBadQuery(t *testing.T) {
	handler := NewOfferHandler(testhelpers.CatalogFacadeStub{}, testhelpers.ProfileFacadeStub{})
	for _, target := range []string{
		"/offers/?creator_id=abc",
		"/offers/?min_price=abc",
		"/offers/?max_delivery_time=abc",
		"/offers/?ordering=price",
		"/offers/?page=0",
	} {
		resp := performRequest(t, http.MethodGet, "/offers/", target, handler.List, 0, nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 for %q, got %d", target, resp.Code)
		}
	}
}

func TestOfferHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOfferRequest{
		Title: "Grafikdesign-Paket",
		Details: []dto.CreateOfferDetailRequest{
			{Title: "Basic", Revisions: 2, DeliveryTimeInDays: 5, Features: []string{"Logo"}, OfferType: "basic"},
			{Title: "Standard", Revisions: 5, DeliveryTimeInDays: 7, Features: []string{"Logo", "Flyer"}, OfferType: "standard"},
			{Title: "Premium", Revisions: 10, DeliveryTimeInDays: 10, Features: []string{"Logo", "Flyer", "Card"}, OfferType: "premium"},
		},
	})
	handler := NewOfferHandler(testhelpers.CatalogFacadeStub{CreateOfferFn: func(ctx context.Context, callerID int64, input usecase.CreateOfferInput) (*model.Offer, error) {
		if callerID != 5 || len(input.Details) != 3 {
			t.Fatalf("unexpected input: caller %d, %d details", callerID, len(input.Details))
		}
		return testhelpers.SampleOffer(1, callerID), nil
	}}, testhelpers.ProfileFacadeStub{})

	resp := performRequest(t, http.MethodPost, "/offers/", "/offers/", handler.Create, 5, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var out dto.OfferMutationResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if len(out.Details) != 3 {
		t.Fatalf("expected full details on create response, got %d", len(out.Details))
	}
}

func TestOfferHandlerUpdateWhitelist(t *testing.T) {
	handler := NewOfferHandler(testhelpers.CatalogFacadeStub{}, testhelpers.ProfileFacadeStub{})

	resp := performRequest(t, http.MethodPatch, "/offers/:pk/", "/offers/2/", handler.Update, 1, []byte(`{"min_price":1}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for disallowed key, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPatch, "/offers/:pk/", "/offers/2/", handler.Update, 1, []byte(`{"title":"Updated"}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestOfferHandlerDelete(t *testing.T) {
	handler := NewOfferHandler(testhelpers.CatalogFacadeStub{}, testhelpers.ProfileFacadeStub{})
	resp := performRequest(t, http.MethodDelete, "/offers/:pk/", "/offers/2/", handler.Delete, 1, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", resp.Body.String())
	}

	forbidden := NewOfferHandler(testhelpers.CatalogFacadeStub{DeleteOfferFn: func(ctx context.Context, callerID, offerID int64) error {
		return fmt.Errorf("%w: user is not the owner of the offer", domainErrors.ErrForbidden)
	}}, testhelpers.ProfileFacadeStub{})
	resp = performRequest(t, http.MethodDelete, "/offers/:pk/", "/offers/2/", forbidden.Delete, 1, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{OfferDetailID: 11})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, callerID, offerDetailID int64) (*model.Order, error) {
		if callerID != 4 || offerDetailID != 11 {
			t.Fatalf("unexpected arguments: %d %d", callerID, offerDetailID)
		}
		return testhelpers.SampleOrder(1, callerID, 2), nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders/", "/orders/", handler.Create, 4, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var out dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if out.Status != string(model.OrderStatusInProgress) {
		t.Fatalf("expected in_progress status, got %q", out.Status)
	}
	if out.Title == "" || out.OfferType == "" {
		t.Fatalf("tier fields not projected: %+v", out)
	}
}

func TestOrderHandlerUpdateWhitelist(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})

	resp := performRequest(t, http.MethodPatch, "/orders/:pk/", "/orders/3/", handler.Update, 2, []byte(`{"status":"completed","price":1}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for disallowed key, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPatch, "/orders/:pk/", "/orders/3/", handler.Update, 2, []byte(`{"status":"completed"}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if out.Status != "completed" {
		t.Fatalf("status not applied: %q", out.Status)
	}
}

func TestOrderHandlerCounts(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CountFn: func(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
		if status == model.OrderStatusInProgress {
			return 3, nil
		}
		return 8, nil
	}})

	resp := performRequest(t, http.MethodGet, "/order-count/:business_user_id/", "/order-count/2/", handler.CountInProgress, 1, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var count dto.OrderCountResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &count); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if count.OrderCount != 3 {
		t.Fatalf("unexpected order count %d", count.OrderCount)
	}

	resp = performRequest(t, http.MethodGet, "/completed-order-count/:business_user_id/", "/completed-order-count/2/", handler.CountCompleted, 1, nil)
	var completed dto.CompletedOrderCountResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &completed); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if completed.CompletedOrderCount != 8 {
		t.Fatalf("unexpected completed count %d", completed.CompletedOrderCount)
	}
}

func TestReviewHandlerCreateDuplicate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateReviewRequest{BusinessUser: 2, Rating: 4, Description: "good"})
	handler := NewReviewHandler(testhelpers.ReviewFacadeStub{CreateFn: func(ctx context.Context, callerID, businessUserID int64, rating int32, description string) (*model.Review, error) {
		return nil, domainErrors.ErrAlreadyExists
	}})

	resp := performRequest(t, http.MethodPost, "/reviews/", "/reviews/", handler.Create, 1, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409 for duplicate pair, got %d", resp.Code)
	}
}

func TestReviewHandlerUpdateWhitelist(t *testing.T) {
	handler := NewReviewHandler(testhelpers.ReviewFacadeStub{})

	resp := performRequest(t, http.MethodPatch, "/reviews/:pk/", "/reviews/3/", handler.Update, 1, []byte(`{"business_user":9}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for disallowed key, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPatch, "/reviews/:pk/", "/reviews/3/", handler.Update, 1, []byte(`{"rating":5,"description":"better"}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestReviewHandlerList(t *testing.T) {
	var gotFilter repository.ReviewFilter
	handler := NewReviewHandler(testhelpers.ReviewFacadeStub{ReviewsFn: func(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, error) {
		gotFilter = filter
		return []model.Review{*testhelpers.SampleReview(1, 2, 3)}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/reviews/", "/reviews/?business_user_id=2&ordering=-rating", handler.List, 1, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotFilter.BusinessUserID == nil || *gotFilter.BusinessUserID != 2 {
		t.Fatalf("business filter not translated: %+v", gotFilter)
	}
	if gotFilter.SortBy != repository.ReviewSortRating || !gotFilter.SortDesc {
		t.Fatalf("ordering not translated: %+v", gotFilter)
	}
}

func TestStatsHandlerBaseInfo(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/base-info/", "/base-info/", NewStatsHandler(testhelpers.StatsFacadeStub{}).BaseInfo, 0, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.BaseInfoResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if out.AverageRating != 4.5 || out.OfferCount != 5 {
		t.Fatalf("unexpected body: %+v", out)
	}
}
