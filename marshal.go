package main

import (
	"encoding/json"
	"fmt"
	"io"
)

type calcResult struct {
	Structure string   `json:"structure"`
	Op        string   `json:"op"`
	Args      []string `json:"args"`
	Result    string   `json:"result"`
}

func writeResult(w io.Writer, r calcResult, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, r.Result)
		return err
	}
	if r.Args == nil {
		r.Args = []string{}
	}
	return json.NewEncoder(w).Encode(r)
}
