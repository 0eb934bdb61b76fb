package xmlfile

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/presence-analyzer/internal/domain/directory"
	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/storage"
)

type intranetDocument struct {
	XMLName xml.Name      `xml:"intranet"`
	Server  serverElement `xml:"server"`
	Users   []userElement `xml:"users>user"`
}

type serverElement struct {
	Host     string `xml:"host"`
	Port     string `xml:"port"`
	Protocol string `xml:"protocol"`
}

type userElement struct {
	ID     int    `xml:"id,attr"`
	Name   string `xml:"name"`
	Avatar string `xml:"avatar"`
}

// baseURL builds protocol://host:port for avatar links
func (s serverElement) baseURL() string {
	if s.Host == "" {
		return ""
	}
	protocol := s.Protocol
	if protocol == "" {
		protocol = "http"
	}
	if s.Port == "" {
		return fmt.Sprintf("%s://%s", protocol, s.Host)
	}
	return fmt.Sprintf("%s://%s:%s", protocol, s.Host, s.Port)
}

type usersRepository struct {
	storage storage.FileStorage
	path    string
}

// Load implements directory.Repository.
func (u *usersRepository) Load(ctx context.Context) (map[int]directory.User, error) {
	rc, err := u.storage.Open(ctx, u.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", directory.ErrDirectoryUnavailable, err)
	}
	defer rc.Close()

	var doc intranetDocument
	decoder := xml.NewDecoder(rc)
	// Intranet exports are served as ISO-8859-1
	decoder.CharsetReader = charsetReader
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", directory.ErrMalformedDirectory, err)
	}

	base := doc.Server.baseURL()
	users := make(map[int]directory.User, len(doc.Users))
	for _, user := range doc.Users {
		avatar := strings.TrimSpace(user.Avatar)
		if avatar != "" && base != "" {
			avatar = base + avatar
		}
		users[user.ID] = directory.User{
			ID:     user.ID,
			Name:   strings.TrimSpace(user.Name),
			Avatar: avatar,
		}
	}

	return users, nil
}

func NewUsersRepository(fileStorage storage.FileStorage, path string) directory.Repository {
	return &usersRepository{
		storage: fileStorage,
		path:    path,
	}
}
