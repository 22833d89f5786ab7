package roster

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/staffview/internal/config"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ada = domain.Employee{
	ID:             "1",
	FirstName:      "Ada",
	LastName:       "Lovelace",
	Email:          "ada@example.com",
	PhoneNumber:    "555-0100",
	Department:     "IT",
	Position:       "Engineer",
	HireDate:       "2020-03-15",
	IsActive:       true,
	Salary:         "5000",
	Gender:         "Female",
	MaritalStatus:  "Married",
	BloodType:      "A+",
	EducationLevel: "Master",
	Nationality:    "British",
}

var bob = domain.Employee{
	ID:         "2",
	FirstName:  "Bob",
	LastName:   "Smith",
	Department: "HR",
	Position:   "Manager",
	HireDate:   "2019-01-01",
	Salary:     "4200.50",
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewForBackend(t *testing.T) {
	src, err := NewForBackend("", "x.json")
	require.NoError(t, err)
	assert.IsType(t, &JSONSource{}, src)
	assert.Equal(t, "json:x.json", src.Name())

	src, err = NewForBackend(" TSV ", "x.tsv")
	require.NoError(t, err)
	assert.IsType(t, &TSVSource{}, src)

	src, err = NewForBackend("sqlite", "x.db")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSource{}, src)

	_, err = NewForBackend("csv", "x.csv")
	assert.ErrorIs(t, err, ErrUnsupportedBackend)

	_, err = NewForBackend("json", " ")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestNewFromConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("STAFFVIEW_SOURCE_BACKEND", "tsv")
	t.Setenv("STAFFVIEW_SOURCE_PATH", "")
	os.Unsetenv("STAFFVIEW_SOURCE_PATH")
	config.Load()

	src, err := NewFromConfig()
	require.NoError(t, err)
	assert.Equal(t, "tsv:"+filepath.Join(tmp, "state", "staffview", "employees.tsv"), src.Name())
}

func TestBackendForPath(t *testing.T) {
	assert.Equal(t, BackendTSV, BackendForPath("people.TSV"))
	assert.Equal(t, BackendSQLite, BackendForPath("/var/hr.sqlite3"))
	assert.Equal(t, BackendSQLite, BackendForPath("hr.db"))
	assert.Equal(t, BackendJSON, BackendForPath("people.json"))
	assert.Equal(t, BackendJSON, BackendForPath("people"))
}

func TestJSONSource(t *testing.T) {
	path := writeFile(t, "employees.json", `[
  {"id": 1, "firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com",
   "phoneNumber": "555-0100", "department": "IT", "position": "Engineer",
   "hireDate": "2020-03-15", "isActive": true, "salary": 5000, "gender": "Female",
   "maritalStatus": "Married", "bloodType": "A+", "educationLevel": "Master",
   "nationality": "British", "extra": "ignored"},
  {"id": "2", "firstName": "Bob", "lastName": "Smith", "department": "HR",
   "position": "Manager", "hireDate": "2019-01-01", "isActive": "false", "salary": "4200.50"}
]`)

	got, err := Load(context.Background(), NewJSONSource(path))
	require.NoError(t, err)
	if diff := cmp.Diff([]domain.Employee{ada, bob}, got); diff != "" {
		t.Errorf("employees mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSONVariants(t *testing.T) {
	got, err := DecodeJSON([]byte(`{"employees": [{"id": "7", "salary": null, "isActive": "yes"}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, "", got[0].Salary)
	assert.True(t, got[0].IsActive)

	got, err = DecodeJSON([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = DecodeJSON([]byte(`[{"id": {"nested": 1}}]`))
	assert.Error(t, err)

	_, err = DecodeJSON([]byte(`[{"id": "1", "isActive": "sometimes"}]`))
	assert.Error(t, err)
}

func TestTSVSource(t *testing.T) {
	content := strings.Join([]string{
		"# exported roster",
		"id\tfirstName\tlastName\temail\tphoneNumber\tdepartment\tposition\thireDate\tisActive\tsalary\tgender\tmaritalStatus\tbloodType\teducationLevel\tnationality\tunknown",
		"1\tAda\tLovelace\tada@example.com\t555-0100\tIT\tEngineer\t2020-03-15\ttrue\t5000\tFemale\tMarried\tA+\tMaster\tBritish\tx",
		"",
		"2\tBob\tSmith\t\t\tHR\tManager\t2019-01-01\t0\t4200.50",
	}, "\n")
	path := writeFile(t, "employees.tsv", content)

	got, err := Load(context.Background(), NewTSVSource(path))
	require.NoError(t, err)
	if diff := cmp.Diff([]domain.Employee{ada, bob}, got); diff != "" {
		t.Errorf("employees mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTSVErrors(t *testing.T) {
	_, err := DecodeTSV(context.Background(), strings.NewReader("firstName\tlastName\nAda\tLovelace\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = DecodeTSV(context.Background(), strings.NewReader("id\tisActive\n1\tmaybe\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2 column isActive")
}

func TestUnescapeField(t *testing.T) {
	assert.Equal(t, "plain", unescapeField("plain"))
	assert.Equal(t, "a\tb\nc\\d", unescapeField(`a\tb\nc\\d`))
	assert.Equal(t, `keep\x`, unescapeField(`keep\x`))
	assert.Equal(t, `trailing\`, unescapeField(`trailing\`))
}

func createSQLite(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(`CREATE TABLE employees (
		id TEXT PRIMARY KEY,
		first_name TEXT, last_name TEXT, email TEXT, phone_number TEXT,
		department TEXT, position TEXT, hire_date TEXT, is_active INTEGER,
		salary TEXT, gender TEXT, marital_status TEXT, blood_type TEXT,
		education_level TEXT, nationality TEXT
	)`)
	require.NoError(t, err)
	return db
}

func TestSQLiteSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hr.db")
	db := createSQLite(t, path)
	_, err := db.Exec(`INSERT INTO employees VALUES
		('1', 'Ada', 'Lovelace', 'ada@example.com', '555-0100', 'IT', 'Engineer', '2020-03-15', 1, '5000', 'Female', 'Married', 'A+', 'Master', 'British'),
		('2', 'Bob', 'Smith', NULL, NULL, 'HR', 'Manager', '2019-01-01', 0, '4200.50', NULL, NULL, NULL, NULL, NULL)`)
	require.NoError(t, err)

	got, err := Load(context.Background(), NewSQLiteSource(path))
	require.NoError(t, err)
	if diff := cmp.Diff([]domain.Employee{ada, bob}, got); diff != "" {
		t.Errorf("employees mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteSourceRelativePath(t *testing.T) {
	dir := t.TempDir()
	db := createSQLite(t, filepath.Join(dir, "roster.db"))
	_, err := db.Exec(`INSERT INTO employees (id, first_name, department, is_active)
		VALUES ('7', 'Grace', 'IT', 1)`)
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	src := NewSQLiteSource("roster.db")
	dsn, err := src.dsn()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dsn, "file:///"), dsn)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Grace", got[0].FirstName)
}

func TestSQLiteSourceMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewSQLiteSource(path).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query employees")
}

func TestSourcesReportMissingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, src := range []Source{
		NewJSONSource(filepath.Join(dir, "none.json")),
		NewTSVSource(filepath.Join(dir, "none.tsv")),
		NewSQLiteSource(filepath.Join(dir, "none.db")),
	} {
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, ErrSourceNotFound, src.Name())
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	path := writeFile(t, "dupes.json", `[{"id": "1"}, {"id": "1"}]`)
	_, err := Load(context.Background(), NewJSONSource(path))
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	path = writeFile(t, "blank.json", `[{"firstName": "Nobody"}]`)
	_, err = Load(context.Background(), NewJSONSource(path))
	assert.ErrorIs(t, err, domain.ErrMissingID)
}

func TestJSONSourceHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewJSONSource("irrelevant.json").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
