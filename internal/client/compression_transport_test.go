package client

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

func TestDecodeTransport_Encodings(t *testing.T) {
	payload := []byte(`[{"score":1,"show":{"name":"Girls"}}]`)

	tests := []struct {
		name     string
		encoding string
		write    func(w io.Writer)
	}{
		{
			name:     "gzip",
			encoding: "gzip",
			write: func(w io.Writer) {
				gz := gzip.NewWriter(w)
				_, _ = gz.Write(payload)
				_ = gz.Close()
			},
		},
		{
			name:     "brotli",
			encoding: "br",
			write: func(w io.Writer) {
				br := brotli.NewWriter(w)
				_, _ = br.Write(payload)
				_ = br.Close()
			},
		},
		{
			name:     "zstd",
			encoding: "zstd",
			write: func(w io.Writer) {
				// zstd.NewWriter() with default options never fails
				zw, _ := zstd.NewWriter(w)
				_, _ = zw.Write(payload)
				_ = zw.Close()
			},
		},
		{
			name:     "identity",
			encoding: "",
			write: func(w io.Writer) {
				_, _ = w.Write(payload)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Accept-Encoding"); got != "gzip, br, zstd" {
					t.Errorf("Accept-Encoding = %q, want %q", got, "gzip, br, zstd")
				}
				if tt.encoding != "" {
					w.Header().Set("Content-Encoding", tt.encoding)
				}
				w.WriteHeader(http.StatusOK)
				tt.write(w)
			}))
			defer server.Close()

			httpClient := &http.Client{Transport: newDecodeTransport(nil)}
			resp, err := httpClient.Get(server.URL)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if string(body) != string(payload) {
				t.Errorf("body = %q, want %q", body, payload)
			}
			if resp.Header.Get("Content-Encoding") != "" {
				t.Errorf("Content-Encoding should be removed, got %q", resp.Header.Get("Content-Encoding"))
			}
		})
	}
}

func TestDecodeTransport_KeepsCallerAcceptEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept-Encoding"); got != "identity" {
			t.Errorf("Accept-Encoding = %q, want %q", got, "identity")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := (&http.Client{Transport: newDecodeTransport(nil)}).Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	_ = resp.Body.Close()
}

func TestDecodeTransport_DoesNotMutateRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}

	resp, err := (&http.Client{Transport: newDecodeTransport(nil)}).Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	_ = resp.Body.Close()

	if req.Header.Get("Accept-Encoding") != "" {
		t.Errorf("caller request was mutated: Accept-Encoding = %q", req.Header.Get("Accept-Encoding"))
	}
}

func TestDecodeTransport_CorruptGzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("definitely not gzip"))
	}))
	defer server.Close()

	_, err := (&http.Client{Transport: newDecodeTransport(nil)}).Get(server.URL)
	if err == nil {
		t.Fatal("expected an error for a corrupt gzip body")
	}
}

func TestOutermostEncoding(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: ""},
		{header: "gzip", want: "gzip"},
		{header: " GZIP ", want: "gzip"},
		{header: "gzip, br", want: "br"},
		{header: "deflate,zstd", want: "zstd"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := outermostEncoding(tt.header); got != tt.want {
				t.Errorf("outermostEncoding(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
