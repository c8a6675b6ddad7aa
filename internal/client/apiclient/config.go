package apiclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type CacheMode string

const (
	CacheDefault    CacheMode = "default"
	CacheNoStore    CacheMode = "no-store"
	CacheNoCache    CacheMode = "no-cache"
	CacheForceCache CacheMode = "force-cache"
)

// Param is a single query parameter. A nil Value is left out of the query string.
type Param struct {
	Key   string
	Value interface{}
}

// RequestConfig carries the per-call options. The zero value sends an
// authenticated request with no query parameters.
type RequestConfig struct {
	Params     []Param
	SkipAuth   bool
	Cache      CacheMode
	Revalidate int
	Header     http.Header
}

func P(key string, value interface{}) Param {
	return Param{Key: key, Value: value}
}

func buildURL(baseURL, endpoint string, params []Param) string {
	target := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		target = strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
	}

	var query []string
	for _, param := range params {
		value, ok := paramValue(param.Value)
		if !ok {
			continue
		}
		query = append(query, url.QueryEscape(param.Key)+"="+url.QueryEscape(value))
	}
	if len(query) == 0 {
		return target
	}

	separator := "?"
	if strings.Contains(target, "?") {
		separator = "&"
	}
	return target + separator + strings.Join(query, "&")
}

func paramValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case int:
		return strconv.Itoa(v), true
	case *int:
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	case bool:
		return strconv.FormatBool(v), true
	case *bool:
		if v == nil {
			return "", false
		}
		return strconv.FormatBool(*v), true
	default:
		return fmt.Sprint(v), true
	}
}

func cacheControl(cfg RequestConfig) string {
	var directives []string
	switch cfg.Cache {
	case CacheNoStore:
		directives = append(directives, "no-store")
	case CacheNoCache:
		directives = append(directives, "no-cache")
	case CacheForceCache:
		directives = append(directives, "max-stale")
	}
	if cfg.Revalidate > 0 {
		directives = append(directives, "max-age="+strconv.Itoa(cfg.Revalidate))
	}
	return strings.Join(directives, ", ")
}
