package trace

import (
	"github.com/go-kit/log/level"

	tracelog "github.com/jslang/exprtrace/pkg/util/log"
)

type readerState int

const (
	stateAwaitHeader readerState = iota
	stateAwaitEvent
	stateErrored
)

// StreamReader incrementally decodes a trace stream pushed to it in
// arbitrarily-sized pieces via AppendBytes (§4.3). It holds a buffer and
// a state; the cursor is local to each AppendBytes call, because the
// consumed prefix is dropped from the buffer before the call returns. It
// never parses a partial field: any record that isn't fully present yet is left for
// the next AppendBytes call, byte-for-byte identical to parsing it in one
// shot (§8 reader property 1).
//
// A StreamReader is bound to one Visitor for its lifetime and is not
// safe for concurrent use (§5).
type StreamReader struct {
	visitor Visitor
	state   readerState
	buf     []byte
}

// NewStreamReader constructs a StreamReader that delivers decoded records
// to visitor.
func NewStreamReader(visitor Visitor) *StreamReader {
	return &StreamReader{visitor: visitor}
}

// Errored reports whether the reader has transitioned to its terminal
// error state (§4.3.3 step 4). Once true, AppendBytes silently discards
// all further input.
func (r *StreamReader) Errored() bool {
	return r.state == stateErrored
}

// AppendBytes feeds data to the reader. It decodes and delivers every
// complete record now available, buffers any trailing partial record,
// and returns once data has been fully consumed — it never blocks and
// never retains data beyond what's needed to complete the next record
// (§5's "Suspension / blocking: none").
func (r *StreamReader) AppendBytes(data []byte) {
	if r.state == stateErrored {
		return
	}
	r.buf = append(r.buf, data...)
	cursor := 0

loop:
	for {
		switch r.state {
		case stateAwaitHeader:
			if len(r.buf)-cursor < headerSize {
				break loop
			}
			header, err := parseHeader(r.buf[cursor : cursor+headerSize])
			if err != nil {
				r.fail(err)
				break loop
			}
			cursor += headerSize
			metricRecordsDecoded.WithLabelValues("packet_header").Inc()
			r.visitor.VisitPacketHeader(header)
			r.state = stateAwaitEvent

		case stateAwaitEvent:
			timestamp, off1, ok := readUint64(r.buf, cursor)
			if !ok {
				break loop
			}
			idByte, off2, ok := readByte(r.buf, off1)
			if !ok {
				break loop
			}
			visit, next, ok, err := decodeEvent(r.buf, off2, timestamp, EventID(idByte))
			if err != nil {
				r.fail(err)
				break loop
			}
			if !ok {
				break loop
			}
			cursor = next
			metricRecordsDecoded.WithLabelValues(EventID(idByte).String()).Inc()
			visit(r.visitor)

		default: // stateErrored
			break loop
		}
	}

	if r.state == stateErrored {
		r.buf = nil
		return
	}
	// Compact: drop the consumed prefix so buffered memory is bounded by
	// the largest still-incomplete record, not by total stream length
	// (§9's "compact the buffer opportunistically").
	r.buf = append(r.buf[:0:0], r.buf[cursor:]...)
}

func (r *StreamReader) fail(err error) {
	r.state = stateErrored

	kind := "unknown"
	switch e := err.(type) {
	case *InvalidMagicError:
		kind = "invalid_magic"
		metricErrorsTotal.WithLabelValues(kind).Inc()
		r.visitor.VisitErrorInvalidMagic()
	case *InvalidUUIDError:
		kind = "invalid_uuid"
		metricErrorsTotal.WithLabelValues(kind).Inc()
		r.visitor.VisitErrorInvalidUUID()
	case *UnsupportedCompressionModeError:
		kind = "unsupported_compression_mode"
		metricErrorsTotal.WithLabelValues(kind).Inc()
		r.visitor.VisitErrorUnsupportedCompressionMode(e.Mode)
	case *UnknownEventIDError:
		kind = "unknown_event_id"
		metricErrorsTotal.WithLabelValues(kind).Inc()
		r.visitor.VisitErrorUnknownEventID(e.ID)
	}
	level.Debug(tracelog.Logger).Log("msg", "trace stream reader entering errored state", "err", err, "kind", kind)
}
