// Package session holds the state of one interactive debug client run.
package session

import (
	"io"
	"os"

	"firewatch/internal/client/api"
	"firewatch/internal/client/history"
	"firewatch/internal/config"
)

type Session struct {
	Resolver *config.Resolver
	Client   *api.Client
	History  *history.Store // nil when history is disabled
	Out      io.Writer
	Verbose  bool
}

func New(resolver *config.Resolver, store *history.Store) *Session {
	return &Session{
		Resolver: resolver,
		Client:   api.New(resolver),
		History:  store,
		Out:      os.Stdout,
	}
}

func (s *Session) GetResolver() *config.Resolver { return s.Resolver }
func (s *Session) GetClient() *api.Client         { return s.Client }
func (s *Session) GetHistory() *history.Store     { return s.History }
func (s *Session) GetOut() io.Writer              { return s.Out }
func (s *Session) IsVerbose() bool                { return s.Verbose }
