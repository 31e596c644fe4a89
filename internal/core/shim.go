package core

// ReclaimFuncName is the global function the shim calls with a wrapper id
// when the engine collects that wrapper. Backends register a Go callback
// under this name before installing the shim.
const ReclaimFuncName = "__dombind_reclaim"

// ShimJS is the engine-side half of the binding layer, shared by the
// QuickJS and V8 backends. It keeps prototype objects per template id,
// tracks live wrappers in an id-indexed table, and reports reclamation
// through a FinalizationRegistry. The Go side only ever refers to wrappers
// by id, so no engine value handles cross the boundary.
//
// A wrapper is rooted strongly in the table from make until it is handed
// to script (expose) or explicitly downgraded; only then does the table
// drop to a WeakRef and register the wrapper for finalization. A
// reference-counting engine would otherwise collect the wrapper the
// moment make returned, before the embedder could store its handle.
const ShimJS = `(function() {
	if (globalThis.__dombind) return;
	var d = {
		protos: {},
		live: {},
		fin: null
	};
	if (typeof FinalizationRegistry === "function") {
		d.fin = new FinalizationRegistry(function(id) {
			delete d.live[id];
			globalThis.` + ReclaimFuncName + `(id);
		});
	}
	d.newProto = function(id, name, parentId) {
		var parent = parentId < 0 ? null : d.protos[parentId];
		d.protos[id] = Object.create(parent);
		return 1;
	};
	d.make = function(id, protoId, slots) {
		var o = Object.create(d.protos[protoId]);
		Object.defineProperty(o, "__native__", { value: new Array(slots) });
		d.live[id] = { strong: o, ref: null };
		return 1;
	};
	d.deref = function(id) {
		var e = d.live[id];
		if (!e) return undefined;
		return e.strong !== null ? e.strong : e.ref.deref();
	};
	d.downgrade = function(id) {
		var e = d.live[id];
		if (!e) return 0;
		if (e.strong === null) return 1;
		var o = e.strong;
		if (typeof WeakRef === "function") {
			e.ref = new WeakRef(o);
		} else {
			e.ref = { deref: function() { return o; } };
		}
		if (d.fin) d.fin.register(o, id);
		e.strong = null;
		return 1;
	};
	d.setInternal = function(id, i, slot, handle) {
		var o = d.deref(id);
		if (!o || !o.__native__ || i >= o.__native__.length) return 0;
		o.__native__[i] = { slot: slot, handle: handle };
		return 1;
	};
	d.internalSlot = function(id, i) {
		var o = d.deref(id);
		if (!o || !o.__native__ || !o.__native__[i]) return -1;
		return o.__native__[i].slot;
	};
	d.internalHandle = function(id, i) {
		var o = d.deref(id);
		if (!o || !o.__native__ || !o.__native__[i]) return 0;
		return o.__native__[i].handle;
	};
	d.expose = function(id, name) {
		var o = d.deref(id);
		if (!o) return 0;
		globalThis[name] = o;
		d.downgrade(id);
		return 1;
	};
	globalThis.__dombind = d;
})()`
