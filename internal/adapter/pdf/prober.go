package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdfcracker/internal/core/domain"
	"pdfcracker/internal/port"
)

var pdfHeader = []byte("%PDF-")

// Opener hands out independent probers over the target PDF. Each handle
// carries its own reader, so workers never share parser state.
type Opener struct{}

func NewOpener() Opener {
	return Opener{}
}

func (Opener) Open(path string) (port.DocumentProber, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, pdfHeader) {
		return nil, fmt.Errorf("%s: not a PDF document", path)
	}
	return &Prober{data: data}, nil
}

// Prober validates the document with one candidate user password per trial.
type Prober struct {
	data []byte
}

func (p *Prober) TryPassword(candidate string) (outcome domain.ProbeOutcome, err error) {
	// pdfcpu can panic on pathological inputs; a single bad trial must not
	// take the worker down with it.
	defer func() {
		if r := recover(); r != nil {
			outcome = domain.ProbeFailed
			err = fmt.Errorf("probe panic: %v", r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.UserPW = candidate

	if err := api.Validate(bytes.NewReader(p.data), conf); err != nil {
		if isPasswordRejection(err) {
			return domain.ProbeNoMatch, nil
		}
		return domain.ProbeFailed, err
	}
	return domain.ProbeMatch, nil
}

func (p *Prober) Close() error {
	return nil
}

// pdfcpu reports a rejected user password as a plain error value with no
// exported sentinel, so classification falls back to the message.
func isPasswordRejection(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "password") || strings.Contains(msg, "decrypt")
}
