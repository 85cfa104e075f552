package trace

// Visitor receives synchronous callbacks from a StreamReader, one per
// complete record decoded from the stream (§4.3.4). Implementations may
// retain the string/slice fields of any event struct — unlike the
// original's borrowed-buffer-view contract, every string and slice
// delivered here has already been copied out of the reader's internal
// buffer by the decode step, so there is nothing to defensively clone.
type Visitor interface {
	VisitPacketHeader(PacketHeader)

	VisitInitEvent(InitEvent)
	VisitVSCodeDocumentOpenedEvent(VSCodeDocumentOpenedEvent)
	VisitVSCodeDocumentClosedEvent(VSCodeDocumentClosedEvent)
	VisitVSCodeDocumentChangedEvent(VSCodeDocumentChangedEvent)
	VisitVSCodeDocumentSyncEvent(VSCodeDocumentSyncEvent)
	VisitLSPClientToServerMessageEvent(LSPClientToServerMessageEvent)
	VisitVectorMaxSizeHistogramByOwnerEvent(VectorMaxSizeHistogramByOwnerEvent)
	VisitProcessIDEvent(ProcessIDEvent)

	VisitErrorInvalidMagic()
	VisitErrorInvalidUUID()
	VisitErrorUnsupportedCompressionMode(mode byte)
	// VisitErrorUnknownEventID is the implementation-defined callback for
	// event-id bytes outside 0x01-0x08 (§9's open question: "Recommended:
	// treat as a fatal stream error").
	VisitErrorUnknownEventID(id byte)
}

// NopVisitor implements Visitor with no-op methods. Embed it to
// implement only the callbacks a particular consumer cares about.
type NopVisitor struct{}

func (NopVisitor) VisitPacketHeader(PacketHeader) {}
func (NopVisitor) VisitInitEvent(InitEvent)       {}
func (NopVisitor) VisitVSCodeDocumentOpenedEvent(VSCodeDocumentOpenedEvent) {}
func (NopVisitor) VisitVSCodeDocumentClosedEvent(VSCodeDocumentClosedEvent) {}
func (NopVisitor) VisitVSCodeDocumentChangedEvent(VSCodeDocumentChangedEvent) {}
func (NopVisitor) VisitVSCodeDocumentSyncEvent(VSCodeDocumentSyncEvent)     {}
func (NopVisitor) VisitLSPClientToServerMessageEvent(LSPClientToServerMessageEvent) {}
func (NopVisitor) VisitVectorMaxSizeHistogramByOwnerEvent(VectorMaxSizeHistogramByOwnerEvent) {
}
func (NopVisitor) VisitProcessIDEvent(ProcessIDEvent)                      {}
func (NopVisitor) VisitErrorInvalidMagic()                                 {}
func (NopVisitor) VisitErrorInvalidUUID()                                  {}
func (NopVisitor) VisitErrorUnsupportedCompressionMode(mode byte)           {}
func (NopVisitor) VisitErrorUnknownEventID(id byte)                        {}
