package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/twig/tree"
)

func loadTree(file string) (*tree.Node, error) {
	r, err := openFile(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	switch ext := filepath.Ext(file); strings.ToLower(ext) {
	case ".yaml", ".yml", "":
		return tree.DecodeYAML(r)
	case ".xml":
		return tree.DecodeXML(r)
	default:
		return nil, fmt.Errorf("%s: unsupported document type", ext)
	}
}

func saveTree(file string, root *tree.Node) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return tree.EncodeYAML(w, root)
}

func openFile(file string) (io.ReadCloser, error) {
	u, err := url.Parse(file)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequest(http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("accept", "text/xml, application/yaml")
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != 200 {
			return nil, fmt.Errorf("fail to retrieve remote file")
		}
		return res.Body, nil
	default:
		return os.Open(file)
	}
}
