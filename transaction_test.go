package budget

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	testCases := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "Income", want: Income},
		{input: "Expense", want: Expense},
		{input: "income", wantErr: true},
		{input: "EXPENSE", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseKind(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if !tc.wantErr && got.String() != tc.input {
				t.Errorf("ParseKind(%q).String() = %q", tc.input, got.String())
			}
		})
	}
}

func TestKind_MarshalUnknown(t *testing.T) {
	if _, err := json.Marshal(Kind(7)); err == nil {
		t.Error("json.Marshal(Kind(7)) succeeded, want an error")
	}
}

func TestTransaction_MarshalJSON(t *testing.T) {
	tx := Transaction{
		ID:          12,
		Date:        time.Date(2025, time.August, 1, 9, 30, 0, 500, time.FixedZone("CEST", 2*60*60)),
		Amount:      1234.5,
		Description: `rent "august"`,
		Kind:        Expense,
	}

	got, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("json.Marshal() returned an unexpected error: %v", err)
	}
	want := `{"id":12,"date":"2025-08-01T09:30:00.0000005+02:00","amount":1234.5,"description":"rent \"august\"","t_type":"Expense"}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}

func TestTransaction_UnmarshalJSON(t *testing.T) {
	date := time.Date(2025, time.August, 1, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		input   string
		want    Transaction
		wantErr string
	}{
		{
			name:  "complete",
			input: `{"id":1,"date":"2025-08-01T09:30:00Z","amount":100,"description":"salary","t_type":"Income"}`,
			want:  Transaction{ID: 1, Date: date, Amount: 100, Description: "salary", Kind: Income},
		},
		{
			name:  "any key order and unknown keys",
			input: `{"t_type":"Expense","note":"ignored","description":"","amount":-3.5,"date":"2025-08-01T09:30:00Z","id":9}`,
			want:  Transaction{ID: 9, Date: date, Amount: -3.5, Description: "", Kind: Expense},
		},
		{
			name:    "missing fields",
			input:   `{"id":1,"amount":100}`,
			wantErr: `missing field "date"`,
		},
		{
			name:    "unknown type",
			input:   `{"id":1,"date":"2025-08-01T09:30:00Z","amount":100,"description":"x","t_type":"Transfer"}`,
			wantErr: `unknown transaction type: "Transfer"`,
		},
		{
			name:    "amount as string",
			input:   `{"id":1,"date":"2025-08-01T09:30:00Z","amount":"100","description":"x","t_type":"Income"}`,
			wantErr: "cannot unmarshal",
		},
		{
			name:    "date without time",
			input:   `{"id":1,"date":"2025-08-01","amount":100,"description":"x","t_type":"Income"}`,
			wantErr: "parsing time",
		},
		{
			name:    "negative id",
			input:   `{"id":-1,"date":"2025-08-01T09:30:00Z","amount":100,"description":"x","t_type":"Income"}`,
			wantErr: "invalid transaction id -1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got Transaction
			err := json.Unmarshal([]byte(tc.input), &got)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("json.Unmarshal() error = %v, want it to contain %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("json.Unmarshal() returned an unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("json.Unmarshal() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTransaction_Signed(t *testing.T) {
	if got := (Transaction{Amount: 5, Kind: Income}).Signed(); got != 5 {
		t.Errorf("Signed() of income = %v, want 5", got)
	}
	if got := (Transaction{Amount: 5, Kind: Expense}).Signed(); got != -5 {
		t.Errorf("Signed() of expense = %v, want -5", got)
	}
}
