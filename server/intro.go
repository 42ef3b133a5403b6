// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package server

import (
	"io"
	"net/http"

	"go.uber.org/zap"
)

const introPage = `<html>
    <body>
        <h2>RESTful API for the Lock Free Tail LIFO Singly Linked List</h2>
        <br/>
        <p>1. <a href="list/create"><b>Create</b> a list</a></p>
        <p>2. <a href="list/read"><b>Read</b> an element off the list (pop)</a></p>
        <p>3. POST list/update/&lt;element&gt;: <b>Update</b> the list with an element (push)</p>
        <p>4. POST list/insert/&lt;element&gt;/after/&lt;after&gt;: <b>Update</b> the list with an element after another (insertAfter)</p>
        <p>5. DELETE list/delete: <b>Delete</b> the list</p>
    </body>
</html>
`

func (s *Server) intro(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, introPage); err != nil {
		s.logger.WarnWithContext(r.Context(), "failed to write help page", zap.Error(err))
	}
}
