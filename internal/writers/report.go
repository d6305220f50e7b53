package writers

import (
	"encoding/json"
	"io"

	"almanac/internal/jsonlutil"
	"almanac/internal/output"
)

// StartReportWriter spins up a writer goroutine for reports. jsonl streams
// each report as it arrives; other formats buffer until the channel closes
// and then dispatch through the registry.
func StartReportWriter(out io.Writer, format string, opt output.Options, bufSize int) (chan<- output.Report, <-chan error) {
	if format == "jsonl" {
		return StartReportJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 4
	}
	in := make(chan output.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []output.Report
		for r := range in {
			buf = append(buf, r)
		}
		errCh <- WriteReports(format, out, buf, opt)
	}()

	return in, errCh
}

// StartReportJSONLWriter streams each report as one JSON line (v1).
func StartReportJSONLWriter(out io.Writer, bufSize int) (chan<- output.Report, <-chan error) {
	return jsonlutil.Start[output.Report](out, bufSize,
		func(enc *json.Encoder, r output.Report) error {
			return enc.Encode(output.ToAPIResult(r))
		},
		IsBrokenPipe,
	)
}

func writeJSONL(w io.Writer, list []output.Report, _ output.Options) error {
	enc := json.NewEncoder(w)
	for _, r := range list {
		if err := enc.Encode(output.ToAPIResult(r)); err != nil {
			return err
		}
	}
	return nil
}
