// YouTube Data API v3 [PlaylistLister] implementation
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ytnotes/internal/shared"
)

const defaultYouTubeAPIBaseURL string = "https://www.googleapis.com/youtube/v3"

// playlistPageSize is the Data API maximum for playlistItems.
const playlistPageSize = 50

// PlaylistService implements [PlaylistLister] against the YouTube Data API.
type PlaylistService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewPlaylistService creates a playlist listing client. An empty baseURL
// selects the public Data API endpoint.
func NewPlaylistService(baseURL, apiKey string, client *http.Client) *PlaylistService {
	if baseURL == "" {
		baseURL = defaultYouTubeAPIBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &PlaylistService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
	}
}

type playlistSnippetResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// List resolves a playlist into its title and ordered video IDs, following
// pagination until the playlist is exhausted. All failures, including an
// unknown or private playlist, wrap shared.ErrPlaylist.
func (p *PlaylistService) List(ctx context.Context, playlistID string) (*PlaylistPage, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlaylist, shared.ErrMissingKey)
	}

	title, err := p.fetchTitle(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	page := &PlaylistPage{ID: playlistID, Title: title}

	pageToken := ""
	for {
		params := url.Values{}
		params.Set("part", "contentDetails")
		params.Set("playlistId", playlistID)
		params.Set("maxResults", fmt.Sprintf("%d", playlistPageSize))
		params.Set("key", p.apiKey)
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var items playlistItemsResponse
		if err := p.doRequest(ctx, "/playlistItems", params, &items); err != nil {
			return nil, err
		}

		for _, item := range items.Items {
			if id := item.ContentDetails.VideoID; id != "" {
				page.VideoIDs = append(page.VideoIDs, id)
			}
		}

		if items.NextPageToken == "" {
			break
		}
		pageToken = items.NextPageToken
	}

	if len(page.VideoIDs) == 0 {
		return nil, fmt.Errorf("%w: playlist %s has no videos", shared.ErrPlaylist, playlistID)
	}

	return page, nil
}

func (p *PlaylistService) fetchTitle(ctx context.Context, playlistID string) (string, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", playlistID)
	params.Set("key", p.apiKey)

	var snippet playlistSnippetResponse
	if err := p.doRequest(ctx, "/playlists", params, &snippet); err != nil {
		return "", err
	}
	if len(snippet.Items) == 0 {
		return "", fmt.Errorf("%w: playlist %s not found", shared.ErrPlaylist, playlistID)
	}

	return snippet.Items[0].Snippet.Title, nil
}

func (p *PlaylistService) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	apiURL := p.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", shared.ErrPlaylist, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrPlaylist, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return fmt.Errorf("%w: status %d: %s", shared.ErrPlaylist, resp.StatusCode, errResp.Error.Message)
		}
		return fmt.Errorf("%w: status %d", shared.ErrPlaylist, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrPlaylist, err)
	}

	return nil
}
