package dom

import "strings"

// xmlnsPrefix is the attribute prefix that declares a namespace binding.
const xmlnsPrefix = "xmlns:"

// localNamespaceDecls collects the prefixed namespace declarations made
// directly on this element's attributes.
func (e *Element) localNamespaceDecls() map[string]string {
	var decls map[string]string
	for k, v := range e.attributes {
		if !strings.HasPrefix(k, xmlnsPrefix) {
			continue
		}
		if decls == nil {
			decls = make(map[string]string)
		}
		decls[k[len(xmlnsPrefix):]] = v
	}
	return decls
}

// declaredDefault returns the default namespace declared directly on
// this element, either as an xmlns attribute or as an explicit
// constructor namespace on an unprefixed element.
func (e *Element) declaredDefault() (string, bool) {
	if e.explicitNS && e.prefix == "" {
		return e.namespace, true
	}
	if v, ok := e.attributes["xmlns"]; ok {
		return v, true
	}
	return "", false
}

// ResolveNamespaces computes this element's namespace state from its
// own declarations and the inherited scope. It is invoked at attach
// time (append, insert, construction) and is not recomputed on query:
// later attribute mutations do not re-propagate to attached children.
//
// The rules are top-down:
//  1. the element's own declared default namespace wins; otherwise the
//     inherited default is adopted (and becomes the element's namespace
//     when it has no prefix);
//  2. inherited prefix declarations merge under the local ones;
//  3. a prefixed element without an explicit namespace resolves its
//     prefix through the merged context.
//
// The resolution recurses into element children, so attaching a whole
// subtree brings it into the new scope.
func (e *Element) ResolveNamespaces(inheritedDefault string, inheritedContext map[string]string) {
	if own, ok := e.declaredDefault(); ok {
		e.defaultNS = own
	} else {
		e.defaultNS = inheritedDefault
	}

	merged := e.localNamespaceDecls()
	for prefix, uri := range inheritedContext {
		if merged == nil {
			merged = make(map[string]string, len(inheritedContext))
		}
		if _, ok := merged[prefix]; !ok {
			merged[prefix] = uri
		}
	}
	e.context = merged

	switch {
	case e.prefix == "":
		if !e.explicitNS {
			e.namespace = e.defaultNS
		}
	case !e.explicitNS:
		if uri, ok := merged[e.prefix]; ok {
			e.namespace = uri
		}
	}

	for _, c := range e.children {
		if child, ok := c.(*Element); ok {
			child.ResolveNamespaces(e.defaultNS, e.context)
		}
	}
}
