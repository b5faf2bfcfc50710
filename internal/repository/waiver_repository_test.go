package repository

import "testing"

func TestParticipantKey(t *testing.T) {
    cases := []struct {
        name, typ, want string
    }{
        {"John Smith", "ADULT", "john smith|ADULT"},
        {"  John   Smith  ", "adult", "john smith|ADULT"},
        {"JOHN SMITH", "Adult", "john smith|ADULT"},
        {"John Smith", "MINOR", "john smith|MINOR"},
        {"Ana-Maria O'Neil", "MINOR", "ana-maria o'neil|MINOR"},
    }
    for _, tc := range cases {
        if got := ParticipantKey(tc.name, tc.typ); got != tc.want {
            t.Fatalf("ParticipantKey(%q, %q) = %q, want %q", tc.name, tc.typ, got, tc.want)
        }
    }
}

func TestParticipantKeyDistinguishesType(t *testing.T) {
    // The same name as adult and minor are different participants.
    if ParticipantKey("Sam Lee", "ADULT") == ParticipantKey("Sam Lee", "MINOR") {
        t.Fatal("adult and minor keys must differ")
    }
}
