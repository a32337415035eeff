package negotiation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hirewire/models"
	"hirewire/services/negotiation"
	"hirewire/services/scheduling"
)

func twoSlotSelection(t *testing.T) scheduling.Selection {
	t.Helper()
	sel, err := scheduling.NewSelection(
		models.SlotCandidate{DateLabel: "Mon, Mar 4", TimeLabel: "9:00 AM", Timestamp: time.Date(2030, time.March, 4, 9, 0, 0, 0, time.UTC)},
		models.SlotCandidate{DateLabel: "Tue, Mar 5", TimeLabel: "2:00 PM", Timestamp: time.Date(2030, time.March, 5, 14, 0, 0, 0, time.UTC)},
	)
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	return sel
}

func TestSubmit_EmptySelectionMakesNoCall(t *testing.T) {
	api := newFakeAPI()
	s := negotiation.NewSubmitter(api, time.Second, nil)

	_, err := s.Submit(context.Background(), "cand-42", scheduling.Selection{})
	if !errors.Is(err, negotiation.ErrEmptySelection) {
		t.Fatalf("error = %v, want ErrEmptySelection", err)
	}
	if negotiation.KindOf(err) != negotiation.KindValidation {
		t.Errorf("kind = %s, want validation", negotiation.KindOf(err))
	}
	if propose, _, _, _ := api.calls(); propose != 0 {
		t.Errorf("propose called %d times, want 0", propose)
	}
}

func TestSubmit_MissingRequesterMakesNoCall(t *testing.T) {
	api := newFakeAPI()
	s := negotiation.NewSubmitter(api, time.Second, nil)

	_, err := s.Submit(context.Background(), "   ", twoSlotSelection(t))
	if !errors.Is(err, negotiation.ErrMissingRequester) {
		t.Fatalf("error = %v, want ErrMissingRequester", err)
	}
	if propose, _, _, _ := api.calls(); propose != 0 {
		t.Errorf("propose called %d times, want 0", propose)
	}
}

func TestSubmit_SendsCandidates(t *testing.T) {
	api := newFakeAPI()
	s := negotiation.NewSubmitter(api, time.Second, nil)

	ack, err := s.Submit(context.Background(), "cand-42", twoSlotSelection(t))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !ack.Success || ack.SlotGroupID != "grp-1" {
		t.Errorf("unexpected ack: %+v", ack)
	}
	if len(api.proposed) != 1 || len(api.proposed[0]) != 2 {
		t.Fatalf("proposed = %v", api.proposed)
	}
	if api.proposed[0][1].TimeLabel != "2:00 PM" {
		t.Errorf("second slot time = %q", api.proposed[0][1].TimeLabel)
	}
}

func TestSubmit_BackendMessageIsPassedThrough(t *testing.T) {
	api := newFakeAPI()
	api.proposeErr = &negotiation.APIError{StatusCode: 400, Message: "slot at Mon, Mar 4 9:00 AM is in the past"}
	s := negotiation.NewSubmitter(api, time.Second, nil)

	_, err := s.Submit(context.Background(), "cand-42", twoSlotSelection(t))
	if negotiation.KindOf(err) != negotiation.KindNetwork {
		t.Fatalf("kind = %s, want network", negotiation.KindOf(err))
	}
	if got := negotiation.DisplayMessage(err); got != "slot at Mon, Mar 4 9:00 AM is in the past" {
		t.Errorf("message = %q", got)
	}
	if propose, _, _, _ := api.calls(); propose != 1 {
		t.Errorf("propose called %d times, want exactly 1 (no retry)", propose)
	}
}

func TestSubmit_UnsuccessfulAck(t *testing.T) {
	api := newFakeAPI()
	api.proposeAck = models.Ack{Success: false, Message: "Requester is not accepting interviews"}
	s := negotiation.NewSubmitter(api, time.Second, nil)

	_, err := s.Submit(context.Background(), "cand-42", twoSlotSelection(t))
	if err == nil {
		t.Fatal("expected error for unsuccessful ack")
	}
	if got := negotiation.DisplayMessage(err); got != "Requester is not accepting interviews" {
		t.Errorf("message = %q", got)
	}
}

func TestSubmit_TransportErrorUsesFallback(t *testing.T) {
	api := newFakeAPI()
	api.proposeErr = errors.New("dial tcp: connection refused")
	s := negotiation.NewSubmitter(api, time.Second, nil)

	_, err := s.Submit(context.Background(), "cand-42", twoSlotSelection(t))
	if negotiation.KindOf(err) != negotiation.KindNetwork {
		t.Fatalf("kind = %s, want network", negotiation.KindOf(err))
	}
	if got := negotiation.DisplayMessage(err); got == "" || got == "dial tcp: connection refused" {
		t.Errorf("expected generic fallback message, got %q", got)
	}
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	api := newFakeAPI()
	api.block = make(chan struct{})
	s := negotiation.NewSubmitter(api, 5*time.Second, nil)
	sel := twoSlotSelection(t)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), "cand-42", sel)
		done <- err
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if propose, _, _, _ := api.calls(); propose == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("first submission never reached the API")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, err := s.Submit(context.Background(), "cand-42", sel); !errors.Is(err, negotiation.ErrRequestInFlight) {
		t.Errorf("second submit error = %v, want ErrRequestInFlight", err)
	}

	close(api.block)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if propose, _, _, _ := api.calls(); propose != 1 {
		t.Errorf("propose called %d times, want 1", propose)
	}
}

func TestSubmit_TimesOut(t *testing.T) {
	api := newFakeAPI()
	api.block = make(chan struct{})
	defer close(api.block)
	s := negotiation.NewSubmitter(api, 20*time.Millisecond, nil)

	_, err := s.Submit(context.Background(), "cand-42", twoSlotSelection(t))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want deadline exceeded", err)
	}
	if negotiation.KindOf(err) != negotiation.KindNetwork {
		t.Errorf("kind = %s, want network", negotiation.KindOf(err))
	}
}
