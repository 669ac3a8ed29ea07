package result

import "testing"

func TestSuccess(t *testing.T) {
	r := Success(42)

	if !r.IsSuccess() {
		t.Fatalf("IsSuccess = false, want true")
	}
	if r.IsFailure() {
		t.Fatalf("IsFailure = true, want false")
	}
	if r.Value() != 42 {
		t.Fatalf("Value = %d, want 42", r.Value())
	}
}

func TestFailure(t *testing.T) {
	r := Failure[int]("что-то пошло не так")

	if r.IsSuccess() {
		t.Fatalf("IsSuccess = true, want false")
	}
	if !r.IsFailure() {
		t.Fatalf("IsFailure = false, want true")
	}
	if r.Error() != "что-то пошло не так" {
		t.Fatalf("Error = %q", r.Error())
	}
}

func TestSuccessAndFailureAreComplements(t *testing.T) {
	for _, r := range []Result[string]{Success("ok"), Failure[string]("no")} {
		if r.IsSuccess() == r.IsFailure() {
			t.Fatalf("IsSuccess и IsFailure must be complements, got %v and %v", r.IsSuccess(), r.IsFailure())
		}
	}
}

func TestValueOnFailurePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Value on failure must panic")
		}
	}()

	Failure[int]("no").Value()
}

func TestErrorOnSuccessPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Error on success must panic")
		}
	}()

	_ = Success(1).Error()
}
