package service

import (
	"fmt"
	"testing"

	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func roster() []domain.Employee {
	records := make([]domain.Employee, 0, 30)
	for i := 0; i < 30; i++ {
		dept := "IT"
		if i%3 == 0 {
			dept = "HR"
		}
		records = append(records, domain.Employee{
			ID:         fmt.Sprint(i + 1),
			FirstName:  fmt.Sprintf("Person%02d", i+1),
			Department: dept,
			IsActive:   i%2 == 0,
			HireDate:   fmt.Sprintf("2020-01-%02d", i%28+1),
			Salary:     fmt.Sprint(1000 * (i + 1)),
			Gender:     "F",
		})
	}
	return records
}

func newService(t *testing.T) (*CommandService, *view.Controller) {
	t.Helper()
	c := view.New(roster())
	return NewCommandService(c, nil), c
}

func TestParseCommand(t *testing.T) {
	s, _ := newService(t)

	name, args, err := s.ParseCommand("  SORT salary desc ")
	require.NoError(t, err)
	assert.Equal(t, "sort", name)
	assert.Equal(t, []string{"salary", "desc"}, args)

	_, _, err = s.ParseCommand("   ")
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestRunEmptyAndUnknown(t *testing.T) {
	s, _ := newService(t)

	res := s.Run("")
	assert.True(t, res.Error)

	res = s.Run("frobnicate")
	assert.True(t, res.Error)
	assert.Equal(t, "Unknown command: frobnicate", res.Message)
}

func TestQuit(t *testing.T) {
	s, _ := newService(t)
	assert.True(t, s.Run("q").Quit)
	assert.True(t, s.Run("quit").Quit)

	res := s.Run("q now")
	assert.True(t, res.Error)
	assert.False(t, res.Quit)
}

func TestSearchCommand(t *testing.T) {
	s, c := newService(t)

	res := s.Run("search Person0 1")
	assert.False(t, res.Error)
	assert.Equal(t, "Person0 1", c.Spec().Filter.Search)

	res = s.Run("search")
	assert.Equal(t, "Search cleared", res.Message)
	assert.Empty(t, c.Spec().Filter.Search)
}

func TestExactFilterCommands(t *testing.T) {
	s, c := newService(t)

	res := s.Run("department HR")
	assert.False(t, res.Error)
	assert.Equal(t, "Filter department: HR", res.Message)
	assert.Equal(t, 10, c.Result().Pagination.TotalCount)

	s.Run("gender F")
	s.Run("education Master")
	s.Run("blood O+")
	s.Run("marital Single")
	f := c.Spec().Filter
	assert.Equal(t, "F", f.Gender)
	assert.Equal(t, "Master", f.EducationLevel)
	assert.Equal(t, "O+", f.BloodType)
	assert.Equal(t, "Single", f.MaritalStatus)

	res = s.Run("department")
	assert.Equal(t, "Filter department cleared", res.Message)
	assert.Empty(t, c.Spec().Filter.Department)
}

func TestStatusCommand(t *testing.T) {
	s, c := newService(t)

	assert.False(t, s.Run("status ACTIVE").Error)
	assert.Equal(t, domain.StatusActive, c.Spec().Filter.Status)
	assert.Equal(t, 15, c.Result().Pagination.TotalCount)

	assert.False(t, s.Run("status all").Error)
	assert.Empty(t, c.Spec().Filter.Status)

	res := s.Run("status retired")
	assert.True(t, res.Error)
	assert.Contains(t, res.Message, "invalid filter value")

	assert.True(t, s.Run("status").Error)
}

func TestGenericFilterCommand(t *testing.T) {
	s, c := newService(t)

	assert.False(t, s.Run("filter department Human Resources").Error)
	assert.Equal(t, "Human Resources", c.Spec().Filter.Get(domain.FilterDepartment))
}

func TestGenericFilterCommandErrors(t *testing.T) {
	s, _ := newService(t)

	assert.True(t, s.Run("filter").Error)
	res := s.Run("filter shoeSize 42")
	assert.True(t, res.Error)
	assert.Contains(t, res.Message, "unknown filter field")
}

func TestSalaryCommand(t *testing.T) {
	s, c := newService(t)

	res := s.Run("salary 5000 10000")
	require.False(t, res.Error, res.Message)
	assert.Equal(t, "minSalary: 5000  maxSalary: 10000", res.Message)
	assert.Equal(t, 6, c.Result().Pagination.TotalCount)

	res = s.Run("salary - 2000")
	require.False(t, res.Error, res.Message)
	assert.Equal(t, "minSalary: any  maxSalary: 2000", res.Message)
	assert.Equal(t, 2, c.Result().Pagination.TotalCount)
}

func TestRangeCommandPublishesOnce(t *testing.T) {
	s, c := newService(t)
	var published []domain.Filter
	unsubscribe := c.Subscribe(func(r view.Result) { published = append(published, r.Spec.Filter) })
	defer unsubscribe()

	res := s.Run("salary 5000 10000")
	require.False(t, res.Error, res.Message)
	require.Len(t, published, 1)
	assert.Equal(t, "5000", published[0].MinSalary)
	assert.Equal(t, "10000", published[0].MaxSalary)
}

func TestRangeCommandValidatesBothBounds(t *testing.T) {
	s, c := newService(t)

	res := s.Run("salary 100 lots")
	assert.True(t, res.Error)
	assert.Empty(t, c.Spec().Filter.MinSalary)

	res = s.Run("hired 2020-01-05 nope")
	assert.True(t, res.Error)
	assert.Empty(t, c.Spec().Filter.HireDateFrom)

	assert.True(t, s.Run("hired").Error)
	assert.True(t, s.Run("hired a b c").Error)
}

func TestHiredCommand(t *testing.T) {
	s, c := newService(t)

	res := s.Run("hired 2020-01-01 2020-01-02")
	require.False(t, res.Error, res.Message)
	// Days 1 and 2 appear for i = 0, 1, 28, 29.
	assert.Equal(t, 4, c.Result().Pagination.TotalCount)
}

func TestClearCommand(t *testing.T) {
	s, c := newService(t)
	s.Run("department HR")
	s.Run("status active")

	res := s.Run("clear")
	assert.Equal(t, "Filters cleared", res.Message)
	assert.True(t, c.Spec().Filter.IsEmpty())
	assert.True(t, s.Run("clear all").Error)
}

func TestSortCommand(t *testing.T) {
	s, c := newService(t)

	res := s.Run("sort salary desc")
	require.False(t, res.Error, res.Message)
	assert.Equal(t, "Sort: salary desc", res.Message)
	assert.Equal(t, "30", c.Result().Visible[0].ID)

	res = s.Run("sort name")
	assert.Equal(t, "Sort: name desc", res.Message)

	assert.True(t, s.Run("sort shoeSize").Error)
	assert.True(t, s.Run("sort name sideways").Error)
	assert.True(t, s.Run("sort").Error)
}

func TestSizeAndPageCommands(t *testing.T) {
	s, c := newService(t)

	res := s.Run("page 3")
	assert.Equal(t, "Page: 3", res.Message)
	assert.Equal(t, 3, c.Result().Pagination.CurrentPage)

	res = s.Run("size 20")
	assert.Equal(t, "Page size: 20", res.Message)
	assert.Equal(t, 1, c.Spec().Page)

	assert.True(t, s.Run("size 7").Error)
	assert.True(t, s.Run("size ten").Error)
	assert.True(t, s.Run("page").Error)

	res = s.Run("page 0")
	assert.Equal(t, "Page: 1", res.Message)

	// 30 records at size 10 leave three pages.
	require.NoError(t, c.SetPageSize(10))
	res = s.Run("page 99")
	assert.Equal(t, "Page: 3", res.Message)
	assert.Equal(t, 3, c.Result().Pagination.CurrentPage)
}

func TestFacetsCommand(t *testing.T) {
	s, _ := newService(t)

	res := s.Run("facets department")
	assert.Equal(t, "department: HR, IT", res.Message)

	res = s.Run("facets bloodType")
	assert.Equal(t, "bloodType: no values", res.Message)

	assert.True(t, s.Run("facets minSalary").Error)
	assert.True(t, s.Run("facets").Error)
}

func TestSuggestions(t *testing.T) {
	s, _ := newService(t)
	assert.Equal(t, []string{"salary", "search", "size", "sort", "status"}, s.Suggestions("s"))
	assert.Equal(t, []string{"quit"}, s.Suggestions("QU"))
	assert.Empty(t, s.Suggestions("zzz"))
}

func TestUsage(t *testing.T) {
	s, _ := newService(t)
	assert.Equal(t, "page <n>", s.Usage("page"))
	assert.Empty(t, s.Usage("nope"))
}

type mockController struct {
	mock.Mock
}

func (m *mockController) Spec() domain.ViewSpec {
	return m.Called().Get(0).(domain.ViewSpec)
}

func (m *mockController) SetSearch(term string) { m.Called(term) }

func (m *mockController) SetFilter(field domain.FilterField, value string) error {
	return m.Called(field, value).Error(0)
}

func (m *mockController) ClearFilters() { m.Called() }

func (m *mockController) SetSort(field domain.SortField, order domain.SortOrder) error {
	return m.Called(field, order).Error(0)
}

func (m *mockController) SetPage(n int) { m.Called(n) }

func (m *mockController) SetPageSize(n int) error { return m.Called(n).Error(0) }

func (m *mockController) Replace(spec domain.ViewSpec) error {
	return m.Called(spec).Error(0)
}

func (m *mockController) Result() view.Result {
	return m.Called().Get(0).(view.Result)
}

func (m *mockController) FacetValues(field domain.FilterField) ([]string, error) {
	args := m.Called(field)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

func TestControllerErrorsBecomeResults(t *testing.T) {
	c := new(mockController)
	c.On("SetFilter", domain.FilterDepartment, "HR").Return(domain.ErrInvalidFilterValue)
	s := NewCommandService(c, nil)

	res := s.Run("department HR")
	assert.True(t, res.Error)
	assert.Equal(t, domain.ErrInvalidFilterValue.Error(), res.Message)
	c.AssertExpectations(t)
}

func TestSortUsesCurrentOrder(t *testing.T) {
	c := new(mockController)
	spec := domain.DefaultViewSpec()
	spec.Sort.Order = domain.SortOrderDesc
	c.On("Spec").Return(spec)
	c.On("SetSort", domain.SortByHireDate, domain.SortOrderDesc).Return(nil)
	s := NewCommandService(c, nil)

	res := s.Run("sort hireDate")
	assert.False(t, res.Error)
	c.AssertExpectations(t)
}
