package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

const sampleLAS = `~VERSION INFORMATION
 VERS.                 2.0 : CWLS LOG ASCII STANDARD - VERSION 2.0
 WRAP.                  NO : ONE LINE PER DEPTH STEP
~WELL INFORMATION
 STRT.M             1000.0 : START DEPTH
 STOP.M             1010.0 : STOP DEPTH
 STEP.M                1.0 : STEP
 NULL.             -999.25 : NULL VALUE
 WELL.       SMOKE TEST #1 : WELL NAME
 FLD .           TEST FIELD : FIELD
~CURVE INFORMATION
 DEPT.M                    : DEPTH
 GR  .GAPI                 : GAMMA RAY
 RHOB.G/C3                 : BULK DENSITY
~A
1000.0   55.2   2.45
1001.0   60.1   2.40
1002.0   72.8   2.35
1003.0   81.3  -999.25
1004.0   90.5   2.28
1005.0   95.0   2.25
1006.0   88.7   2.30
1007.0   75.4   2.38
1008.0   62.9   2.42
1009.0   58.3   2.44
1010.0   54.1   2.46
`

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // No timeout, generation can take a while
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func uploadSample() (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "smoke_test.las")
	if err != nil {
		return "", err
	}
	if _, err := part.Write([]byte(sampleLAS)); err != nil {
		return "", err
	}
	w.Close()

	resp, err := http.Post(baseURL+"/upload", w.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	var parsed struct {
		File struct {
			Id string `json:"id"`
		} `json:"file"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	return parsed.File.Id, nil
}

func main() {
	color.Cyan("🚀 Starting Well-Log API Smoke Test\n")

	// 1. Upload sample LAS file
	color.Yellow("\n1. Upload sample LAS file")
	fileId, err := uploadSample()
	if err != nil || fileId == "" {
		color.Red("Upload failed: %v", err)
		os.Exit(1)
	}

	// 2. List files
	color.Yellow("\n2. List files")
	resp, body, err := sendRequest("GET", "/files", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 3. Curves + depth range
	color.Yellow("\n3. Curves")
	_, body, _ = sendRequest("GET", "/curves/"+fileId, nil)
	prettyPrint(body)

	color.Yellow("\n4. Depth range")
	_, body, _ = sendRequest("GET", "/depth-range/"+fileId, nil)
	prettyPrint(body)

	// 5. Visualization window
	color.Yellow("\n5. Visualize GR+RHOB between 1002 and 1008")
	vizReq := map[string]interface{}{
		"file_id":     fileId,
		"curves":      []string{"GR", "RHOB"},
		"start_depth": 1002.0,
		"end_depth":   1008.0,
	}
	resp, body, err = sendRequest("POST", "/visualize", vizReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 6. Interpretation (requires a configured LLM provider)
	color.Yellow("\n6. Interpret GR+RHOB (needs LLM credentials)")
	interpretReq := map[string]interface{}{
		"file_id":     fileId,
		"curves":      []string{"GR", "RHOB"},
		"start_depth": 1000.0,
		"end_depth":   1010.0,
	}
	resp, body, err = sendRequest("POST", "/interpret", interpretReq)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(body)
	}

	// 7. Interpretation history
	color.Yellow("\n7. Interpretation history")
	_, body, _ = sendRequest("GET", "/interpretations/"+fileId, nil)
	prettyPrint(body)

	// 8. Chat turn
	color.Yellow("\n8. Chat about the well")
	chatReq := map[string]interface{}{
		"file_id": fileId,
		"message": "What curves are available and what do they measure?",
	}
	resp, body, err = sendRequest("POST", "/chat", chatReq)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(body)
	}

	// 9. Delete and verify idempotency
	color.Yellow("\n9. Delete file (twice, second must still succeed)")
	resp, body, _ = sendRequest("DELETE", "/file/"+fileId, nil)
	color.Green("First delete: %s", resp.Status)
	prettyPrint(body)
	resp, body, _ = sendRequest("DELETE", "/file/"+fileId, nil)
	color.Green("Second delete: %s", resp.Status)
	prettyPrint(body)

	color.Cyan("\n✅ Smoke test finished")
}
