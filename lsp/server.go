// Package lsp serves hover information for JVM descriptor literals over
// the Language Server Protocol.
package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "jdesc"

var log = commonlog.GetLogger("jdesc.lsp")

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.Mutex
	documents map[string]string
}

func NewServer(version string) *Server {
	ls := &Server{
		version:   version,
		documents: make(map[string]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("%s %s ready", lsName, ls.version)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.Update(params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.Update(params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return ls.Hover(params.TextDocument.URI, int(params.Position.Line), int(params.Position.Character)), nil
}

// Update replaces the stored content of the document at uri.
func (ls *Server) Update(uri, content string) {
	ls.mu.Lock()
	ls.documents[uri] = content
	ls.mu.Unlock()
}

// Hover returns the hover for the descriptor under line:col of the
// document at uri, or nil when there is none. Columns are treated as byte
// offsets, which matches UTF-16 positions for the ASCII descriptor
// alphabet.
func (ls *Server) Hover(uri string, line, col int) *protocol.Hover {
	ls.mu.Lock()
	content, ok := ls.documents[uri]
	ls.mu.Unlock()
	if !ok {
		return nil
	}

	tok, d, ok := DescriptorAt(content, line, col)
	if !ok {
		if tok.Text != "" {
			log.Debugf("no descriptor at %s:%d:%d (%q)", uri, line, col, tok.Text)
		}
		return nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: HoverText(d),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(tok.Line), Character: protocol.UInteger(tok.Start)},
			End:   protocol.Position{Line: protocol.UInteger(tok.Line), Character: protocol.UInteger(tok.End)},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
