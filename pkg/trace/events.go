package trace

// EventID identifies an event record's payload shape (§4.3.2).
type EventID byte

const (
	EventInit                          EventID = 0x01
	EventVSCodeDocumentOpened          EventID = 0x02
	EventVSCodeDocumentClosed          EventID = 0x03
	EventVSCodeDocumentChanged         EventID = 0x04
	EventVSCodeDocumentSync            EventID = 0x05
	EventLSPClientToServerMessage      EventID = 0x06
	EventVectorMaxSizeHistogramByOwner EventID = 0x07
	EventProcessID                     EventID = 0x08
)

func (id EventID) String() string {
	switch id {
	case EventInit:
		return "init"
	case EventVSCodeDocumentOpened:
		return "vscode_document_opened"
	case EventVSCodeDocumentClosed:
		return "vscode_document_closed"
	case EventVSCodeDocumentChanged:
		return "vscode_document_changed"
	case EventVSCodeDocumentSync:
		return "vscode_document_sync"
	case EventLSPClientToServerMessage:
		return "lsp_client_to_server_message"
	case EventVectorMaxSizeHistogramByOwner:
		return "vector_max_size_histogram_by_owner"
	case EventProcessID:
		return "process_id"
	default:
		return "unknown"
	}
}

// InitEvent reports the producer's version string.
type InitEvent struct {
	Timestamp uint64
	Version   string
}

// VSCodeDocumentOpenedEvent reports a VS Code text document being opened.
type VSCodeDocumentOpenedEvent struct {
	Timestamp  uint64
	DocumentID uint64
	URI        string
	LanguageID string
	Content    string
}

// VSCodeDocumentClosedEvent reports a VS Code text document being closed.
type VSCodeDocumentClosedEvent struct {
	Timestamp  uint64
	DocumentID uint64
	URI        string
	LanguageID string
}

// DocumentChange is one edit within a VSCodeDocumentChangedEvent. The six
// range fields are stored unsigned and opaque to this package (§4.3.2).
type DocumentChange struct {
	StartLine   uint64
	StartChar   uint64
	EndLine     uint64
	EndChar     uint64
	RangeOffset uint64
	RangeLength uint64
	Text        string
}

// VSCodeDocumentChangedEvent reports one or more edits to an open
// document.
type VSCodeDocumentChangedEvent struct {
	Timestamp  uint64
	DocumentID uint64
	Changes    []DocumentChange
}

// VSCodeDocumentSyncEvent reports a full-document resync (e.g. after
// reconnecting to the editor).
type VSCodeDocumentSyncEvent struct {
	Timestamp  uint64
	DocumentID uint64
	URI        string
	LanguageID string
	Content    string
}

// LSPClientToServerMessageEvent reports a raw LSP message body the
// producer forwarded from its client.
type LSPClientToServerMessageEvent struct {
	Timestamp uint64
	Body      string
}

// HistogramBucket is one (max_size, count) pair within a
// VectorMaxSizeHistogramByOwnerEvent entry.
type HistogramBucket struct {
	MaxSize uint64
	Count   uint64
}

// HistogramEntry is one owner's bucket list within a
// VectorMaxSizeHistogramByOwnerEvent.
type HistogramEntry struct {
	Owner   string
	Buckets []HistogramBucket
}

// VectorMaxSizeHistogramByOwnerEvent reports internal vector high-water
// marks, grouped by owning subsystem.
type VectorMaxSizeHistogramByOwnerEvent struct {
	Timestamp uint64
	Entries   []HistogramEntry
}

// ProcessIDEvent reports the producer process's OS process ID.
type ProcessIDEvent struct {
	Timestamp uint64
	ProcessID uint64
}

// decodeEvent attempts to decode one complete event record starting at
// off (which must point just past the record's 8-byte timestamp and
// 1-byte event-id). It returns the callback that delivers the decoded
// payload to a Visitor, the offset just past the record, and whether a
// complete record was present. decodeEvent never partially consumes a
// record: on ok == false, off is meaningless and the caller must wait for
// more bytes.
func decodeEvent(buf []byte, off int, timestamp uint64, id EventID) (visit func(Visitor), next int, ok bool, err error) {
	switch id {
	case EventInit:
		version, next, ok := readCString(buf, off)
		if !ok {
			return nil, off, false, nil
		}
		ev := InitEvent{Timestamp: timestamp, Version: version}
		return func(v Visitor) { v.VisitInitEvent(ev) }, next, true, nil

	case EventVSCodeDocumentOpened:
		docID, off1, ok := readUint64(buf, off)
		if !ok {
			return nil, off, false, nil
		}
		uri, off2, ok := readUTF16Len8(buf, off1)
		if !ok {
			return nil, off, false, nil
		}
		lang, off3, ok := readUTF16Len8(buf, off2)
		if !ok {
			return nil, off, false, nil
		}
		content, off4, ok := readUTF16Len8(buf, off3)
		if !ok {
			return nil, off, false, nil
		}
		ev := VSCodeDocumentOpenedEvent{Timestamp: timestamp, DocumentID: docID, URI: uri, LanguageID: lang, Content: content}
		return func(v Visitor) { v.VisitVSCodeDocumentOpenedEvent(ev) }, off4, true, nil

	case EventVSCodeDocumentClosed:
		docID, off1, ok := readUint64(buf, off)
		if !ok {
			return nil, off, false, nil
		}
		uri, off2, ok := readUTF16Len8(buf, off1)
		if !ok {
			return nil, off, false, nil
		}
		lang, off3, ok := readUTF16Len8(buf, off2)
		if !ok {
			return nil, off, false, nil
		}
		ev := VSCodeDocumentClosedEvent{Timestamp: timestamp, DocumentID: docID, URI: uri, LanguageID: lang}
		return func(v Visitor) { v.VisitVSCodeDocumentClosedEvent(ev) }, off3, true, nil

	case EventVSCodeDocumentChanged:
		docID, off1, ok := readUint64(buf, off)
		if !ok {
			return nil, off, false, nil
		}
		changeCount, off2, ok := readUint64(buf, off1)
		if !ok {
			return nil, off, false, nil
		}
		changes := make([]DocumentChange, 0, changeCount)
		cursor := off2
		for i := uint64(0); i < changeCount; i++ {
			change, nextCursor, ok := decodeDocumentChange(buf, cursor)
			if !ok {
				return nil, off, false, nil
			}
			changes = append(changes, change)
			cursor = nextCursor
		}
		ev := VSCodeDocumentChangedEvent{Timestamp: timestamp, DocumentID: docID, Changes: changes}
		return func(v Visitor) { v.VisitVSCodeDocumentChangedEvent(ev) }, cursor, true, nil

	case EventVSCodeDocumentSync:
		docID, off1, ok := readUint64(buf, off)
		if !ok {
			return nil, off, false, nil
		}
		uri, off2, ok := readUTF16Len8(buf, off1)
		if !ok {
			return nil, off, false, nil
		}
		lang, off3, ok := readUTF16Len8(buf, off2)
		if !ok {
			return nil, off, false, nil
		}
		content, off4, ok := readUTF16Len8(buf, off3)
		if !ok {
			return nil, off, false, nil
		}
		ev := VSCodeDocumentSyncEvent{Timestamp: timestamp, DocumentID: docID, URI: uri, LanguageID: lang, Content: content}
		return func(v Visitor) { v.VisitVSCodeDocumentSyncEvent(ev) }, off4, true, nil

	case EventLSPClientToServerMessage:
		body, off1, ok := readUTF8Len8(buf, off)
		if !ok {
			return nil, off, false, nil
		}
		ev := LSPClientToServerMessageEvent{Timestamp: timestamp, Body: body}
		return func(v Visitor) { v.VisitLSPClientToServerMessageEvent(ev) }, off1, true, nil

	case EventVectorMaxSizeHistogramByOwner:
		entryCount, off1, ok := readUint64(buf, off)
		if !ok {
			return nil, off, false, nil
		}
		entries := make([]HistogramEntry, 0, entryCount)
		cursor := off1
		for i := uint64(0); i < entryCount; i++ {
			entry, nextCursor, ok := decodeHistogramEntry(buf, cursor)
			if !ok {
				return nil, off, false, nil
			}
			entries = append(entries, entry)
			cursor = nextCursor
		}
		ev := VectorMaxSizeHistogramByOwnerEvent{Timestamp: timestamp, Entries: entries}
		return func(v Visitor) { v.VisitVectorMaxSizeHistogramByOwnerEvent(ev) }, cursor, true, nil

	case EventProcessID:
		pid, off1, ok := readUint64(buf, off)
		if !ok {
			return nil, off, false, nil
		}
		ev := ProcessIDEvent{Timestamp: timestamp, ProcessID: pid}
		return func(v Visitor) { v.VisitProcessIDEvent(ev) }, off1, true, nil

	default:
		return nil, off, false, &UnknownEventIDError{ID: byte(id)}
	}
}

func decodeDocumentChange(buf []byte, off int) (DocumentChange, int, bool) {
	var c DocumentChange
	var ok bool
	if c.StartLine, off, ok = readUint64(buf, off); !ok {
		return DocumentChange{}, 0, false
	}
	if c.StartChar, off, ok = readUint64(buf, off); !ok {
		return DocumentChange{}, 0, false
	}
	if c.EndLine, off, ok = readUint64(buf, off); !ok {
		return DocumentChange{}, 0, false
	}
	if c.EndChar, off, ok = readUint64(buf, off); !ok {
		return DocumentChange{}, 0, false
	}
	if c.RangeOffset, off, ok = readUint64(buf, off); !ok {
		return DocumentChange{}, 0, false
	}
	if c.RangeLength, off, ok = readUint64(buf, off); !ok {
		return DocumentChange{}, 0, false
	}
	if c.Text, off, ok = readUTF16Len8(buf, off); !ok {
		return DocumentChange{}, 0, false
	}
	return c, off, true
}

func decodeHistogramEntry(buf []byte, off int) (HistogramEntry, int, bool) {
	owner, off1, ok := readCString(buf, off)
	if !ok {
		return HistogramEntry{}, 0, false
	}
	maxSizeCount, off2, ok := readUint64(buf, off1)
	if !ok {
		return HistogramEntry{}, 0, false
	}
	buckets := make([]HistogramBucket, 0, maxSizeCount)
	cursor := off2
	for i := uint64(0); i < maxSizeCount; i++ {
		maxSize, next, ok := readUint64(buf, cursor)
		if !ok {
			return HistogramEntry{}, 0, false
		}
		count, next2, ok := readUint64(buf, next)
		if !ok {
			return HistogramEntry{}, 0, false
		}
		buckets = append(buckets, HistogramBucket{MaxSize: maxSize, Count: count})
		cursor = next2
	}
	return HistogramEntry{Owner: owner, Buckets: buckets}, cursor, true
}
