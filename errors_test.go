package sgdata_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AndrewDonelson/sgdata"
)

func TestErrors_Sentinel(t *testing.T) {
	errs := []error{
		sgdata.ErrDecodeList,
		sgdata.ErrDecodeElement,
		sgdata.ErrFlattenList,
		sgdata.ErrFlattenElements,
		sgdata.ErrEnvelope,
		sgdata.ErrWireTag,
	}
	for _, e := range errs {
		if e == nil {
			t.Fatalf("nil sentinel error")
		}
		if !strings.HasPrefix(e.Error(), "sgdata: ") {
			t.Fatalf("sentinel %q missing package prefix", e)
		}
	}
}

func TestErrors_Is_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w 9", sgdata.ErrWireTag)
	if !errors.Is(wrapped, sgdata.ErrWireTag) {
		t.Fatal("expected ErrWireTag")
	}
}
