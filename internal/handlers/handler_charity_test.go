package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/SscSPs/alsabqon_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// CharityHandlerTestSuite runs with bearer authentication enabled.
type CharityHandlerTestSuite struct {
	handlerSuite
}

func (suite *CharityHandlerTestSuite) SetupTest() {
	suite.setupRouter("test-secret-key-that-is-long-enough")
}

func (suite *CharityHandlerTestSuite) authHeader(userID string) []string {
	return []string{"Authorization", "Bearer " + suite.generateTestToken(userID)}
}

func (suite *CharityHandlerTestSuite) TestRequiresToken() {
	w := suite.perform(http.MethodGet, "/api/charities/1/stats", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPractice.AssertNotCalled(suite.T(), "GetStats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CharityHandlerTestSuite) TestScriptureStaysPublic() {
	suite.mockScripture.On("ListSurahs", mock.Anything).Return([]domain.SurahMeta{}).Once()

	w := suite.perform(http.MethodGet, "/api/quran/surahs", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *CharityHandlerTestSuite) TestListCharities() {
	suite.mockCatalog.On("ListCategories", mock.Anything, domain.KindCharity).Return([]domain.Category{
		{ID: 26, NameAr: "كفالة يتيم", NameEn: "Orphan sponsorship", NameEs: "Patrocinio de huérfanos", Color: "#FF9800", Description: "Supporting an orphan"},
	}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/charities", "", suite.authHeader("user-7")...)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"charities":[{"id":26,"nameAr":"كفالة يتيم","nameEn":"Orphan sponsorship","nameEs":"Patrocinio de huérfanos","color":"#FF9800","description":"Supporting an orphan"}]}`, w.Body.String())
}

func (suite *CharityHandlerTestSuite) TestCreateEntry_UsesTokenSubject() {
	comments := "fed a family"
	expectedReq := dto.CreateEntryRequest{
		CategoryID: 6,
		Count:      1,
		Date:       "2025-01-16",
		Comment:    strPtr(comments),
	}
	created := &domain.PracticeEntry{
		ID:         "entry-9",
		Kind:       domain.KindCharity,
		UserID:     "user-7",
		CategoryID: 6,
		Count:      1,
		Date:       "2025-01-16",
		Timestamp:  testNow,
		Comments:   &comments,
		EditNotes:  []string{comments},
	}
	suite.mockPractice.On("CreateEntry", mock.Anything, domain.KindCharity, "user-7", expectedReq).Return(created, nil).Once()

	w := suite.perform(http.MethodPost, "/api/charities/entry",
		`{"charity_id":6,"count":1,"date":"2025-01-16","comments":"fed a family"}`, suite.authHeader("user-7")...)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CharityEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("user-7", resp.UserID)
	suite.Equal(6, resp.CharityID)
	suite.Equal(comments, resp.Comments)
	suite.Equal([]string{comments}, resp.EditNotes)
	suite.mockPractice.AssertExpectations(suite.T())
}

func (suite *CharityHandlerTestSuite) TestCreateEntry_EmptyCommentsSerialiseAsEmptyString() {
	created := &domain.PracticeEntry{
		ID: "entry-10", Kind: domain.KindCharity, UserID: "user-7", CategoryID: 1, Count: 2,
		Date: "2025-01-16", Timestamp: testNow,
	}
	suite.mockPractice.On("CreateEntry", mock.Anything, domain.KindCharity, "user-7", mock.Anything).Return(created, nil).Once()

	w := suite.perform(http.MethodPost, "/api/charities/entry",
		`{"charity_id":1,"count":2,"date":"2025-01-16"}`, suite.authHeader("user-7")...)

	suite.Equal(http.StatusCreated, w.Code)
	var raw map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &raw))
	suite.Equal("", raw["comments"])
	suite.Equal([]any{}, raw["edit_notes"])
}

func (suite *CharityHandlerTestSuite) TestUpdateEntry_CommentsOnlyWhenSupplied() {
	entry := &domain.PracticeEntry{ID: "entry-9", Kind: domain.KindCharity, UserID: "user-7", CategoryID: 6, Count: 3, Date: "2025-01-16", Timestamp: testNow}

	suite.Run("omitted", func() {
		suite.mockPractice.On("UpdateEntry", mock.Anything, domain.KindCharity, "user-7", "entry-9",
			dto.UpdateEntryRequest{Count: 3}).Return(entry, nil).Once()

		w := suite.perform(http.MethodPut, "/api/charities/entry/entry-9", `{"count":3}`, suite.authHeader("user-7")...)
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("explicitly cleared", func() {
		suite.mockPractice.On("UpdateEntry", mock.Anything, domain.KindCharity, "user-7", "entry-9",
			dto.UpdateEntryRequest{Count: 3, Comments: strPtr("")}).Return(entry, nil).Once()

		w := suite.perform(http.MethodPut, "/api/charities/entry/entry-9", `{"count":3,"comments":""}`, suite.authHeader("user-7")...)
		suite.Equal(http.StatusOK, w.Code)
		var resp dto.UpdateCharityEntryResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.True(resp.Success)
	})

	suite.mockPractice.AssertExpectations(suite.T())
}

func (suite *CharityHandlerTestSuite) TestGetRangeSummaryUsesCharityKey() {
	suite.mockPractice.On("GetRangeSummary", mock.Anything, domain.KindCharity, "user-7", "2025-01-01", "2025-01-07").
		Return(&domain.PracticeSummary{StartDate: "2025-01-01", EndDate: "2025-01-07", ByCategory: map[int]domain.CategorySummary{}}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/charities/range?start_date=2025-01-01&end_date=2025-01-07", "", suite.authHeader("user-7")...)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"start_date":"2025-01-01","end_date":"2025-01-07","total":0,"charity_summary":{},"entries":[]}`, w.Body.String())
}

func (suite *CharityHandlerTestSuite) TestGetStatsUsesCharityKey() {
	suite.mockPractice.On("GetStats", mock.Anything, domain.KindCharity, "user-7", 26).
		Return(&domain.CategoryStats{CategoryID: 26, TotalCount: 4, TotalSessions: 2}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/charities/26/stats", "", suite.authHeader("user-7")...)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"charity_id":26,"total_count":4,"total_sessions":2,"last_entry":null}`, w.Body.String())
}

func TestCharityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CharityHandlerTestSuite))
}
